package jwt

type Jwt interface {
	Create(sub string, expSeconds int64, payload map[string]any) (string, error)
}

type Validator interface {
	Validate(token string) (map[string]any, error)
}
