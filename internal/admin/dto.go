package admin

// Entry is an admin account as listed over the API. The password hash is
// never serialized.
// swagger:model AdminEntry
type Entry struct {
	ID       int64  `json:"id"       example:"1"`
	Username string `json:"username" example:"annapurna"`
}

// CreateRequest payload for creating an admin account.
// swagger:model CreateAdminRequest
type CreateRequest struct {
	Username string `json:"username" example:"helper"`
	Password string `json:"password" example:"kitchen1"`
}
