package enums

import "fmt"

// ServiceKind classifies a purchasable storefront service.
type ServiceKind string

const (
	ServiceKindServer      ServiceKind = "server"
	ServiceKindHost        ServiceKind = "host"
	ServiceKindCloudServer ServiceKind = "cloud-server"
	ServiceKindVPN         ServiceKind = "vpn"
)

var validServiceKinds = []ServiceKind{
	ServiceKindServer,
	ServiceKindHost,
	ServiceKindCloudServer,
	ServiceKindVPN,
}

// String implements fmt.Stringer.
func (k ServiceKind) String() string {
	return string(k)
}

// IsValid reports whether the kind is one of the catalog's known values.
// Cart line items tolerate unknown kinds; the catalog does not.
func (k ServiceKind) IsValid() bool {
	for _, candidate := range validServiceKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseServiceKind converts raw input into a ServiceKind.
func ParseServiceKind(value string) (ServiceKind, error) {
	for _, candidate := range validServiceKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid service kind %q", value)
}
