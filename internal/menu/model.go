// Package menu stores the weekly menu configuration, a single row the admin
// overwrites as a whole.
package menu

// Cutoffs holds the per-weekday order cutoff times shown on the ordering
// page. The capitalized JSON keys are what the frontend expects.
// swagger:model MenuCutoffs
type Cutoffs struct {
	Monday    string `json:"Monday"    example:"Mon 2pm"`
	Tuesday   string `json:"Tuesday"   example:"Tue 2pm"`
	Wednesday string `json:"Wednesday" example:"Wed 2pm"`
	Thursday  string `json:"Thursday"  example:"Thu 2pm"`
	Friday    string `json:"Friday"    example:"Fri 2pm"`
}

// Config is the singleton menu configuration. MenuJSON is an opaque blob the
// frontend renders; the backend only verifies that it parses as JSON.
// swagger:model MenuConfig
type Config struct {
	MenuJSON    string  `json:"menu_json"`
	WeekText    string  `json:"week_text"    example:"Week of Nov 4"`
	SpecialNote string  `json:"special_note" example:"Closed Thursday"`
	Cutoffs     Cutoffs `json:"cutoffs"`
}
