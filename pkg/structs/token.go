package structs

const (
	RoleRead      = "r"
	RoleReadWrite = "rw"
)

// TokenData is the verified content of an api token.
type TokenData struct {
	User string `json:"user"`
	Role string `json:"role"`
}

func (t *TokenData) CanWrite() bool {
	return t != nil && t.Role == RoleReadWrite
}
