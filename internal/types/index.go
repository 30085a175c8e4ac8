package types

type ErrRep struct {
	ErrorCode string `json:"error_code"`
	Desc      string `json:"desc,omitempty"`
}

type SessionSt struct {
	Username string
	IsAdmin  bool
}

func (s SessionSt) IsAuthenticated() bool {
	return s.Username != ""
}
