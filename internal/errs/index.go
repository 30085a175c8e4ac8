package errs

// Err

type Err string

func (e Err) Error() string {
	return string(e)
}

// ErrWithDesc

type ErrWithDesc struct {
	Err  Err
	Desc string
}

func (e ErrWithDesc) Error() string {
	return e.Err.Error() + ", desc:" + e.Desc
}

// errors

const (
	NoRows            = Err("err_no_rows")
	BadJson           = Err("bad_json")
	BadJwt            = Err("bad_jwt")
	BadQueryParams    = Err("bad_query_params")
	ServiceNA         = Err("service_not_available")
	NotImplemented    = Err("not_implemented")
	NotAuthorized     = Err("not_authorized")
	WrongAuthCreds    = Err("wrong_auth_credentials")
	PermissionDenied  = Err("permission_denied")
	ObjectNotFound    = Err("object_not_found")
	Duplicate         = Err("duplicate_object")
	EmptyUpdateData   = Err("empty_update_data")
	MinGreaterThanMax = Err("min_greater_than_max")
)
