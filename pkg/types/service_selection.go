package types

// ServiceSelection is the payload stored in the per-session "selected" and
// "editing" slots. A catalog page writes it, the service-configuration page
// reads it to seed a cart line item.
type ServiceSelection struct {
	PlanCode     string `json:"plan_code"`
	Name         string `json:"name"`
	Kind         string `json:"type"`
	MonthlyPrice int64  `json:"price"`
	Quantity     int    `json:"quantity,omitempty"`
	Duration     int    `json:"duration,omitempty"`
	Extras       Extras `json:"extras,omitempty"`
}
