package entities

// company

type CompanySt struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int64  `json:"numEmployees"`
	LogoUrl      *string `json:"logoUrl"`
}

type CompanyWithJobsSt struct {
	CompanySt
	Jobs []JobSt `json:"jobs"`
}

type CompanyCreateReqSt struct {
	Handle       string  `json:"handle" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	NumEmployees *int64  `json:"numEmployees" binding:"omitempty,gte=0"`
	LogoUrl      *string `json:"logoUrl" binding:"omitempty,url"`
}

type CompanyListParsSt struct {
	MinEmployees *int64  `json:"minEmployees" form:"minEmployees"`
	MaxEmployees *int64  `json:"maxEmployees" form:"maxEmployees"`
	Name         *string `json:"name" form:"name"`
}

// CompanyUpdateFields is the canonical order of updatable external fields,
// shared by the request validator and the SET-clause builder.
var CompanyUpdateFields = []string{"name", "description", "numEmployees", "logoUrl"}

// job

type JobSt struct {
	Id            int64   `json:"id"`
	Title         string  `json:"title"`
	Salary        *int64  `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

type JobCreateReqSt struct {
	Title         string  `json:"title" binding:"required"`
	Salary        *int64  `json:"salary" binding:"omitempty,gte=0"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle" binding:"required"`
}

type JobListParsSt struct {
	MinSalary *int64  `json:"minSalary" form:"minSalary"`
	Title     *string `json:"title" form:"title"`
	HasEquity *bool   `json:"hasEquity" form:"hasEquity"`
}

var JobUpdateFields = []string{"title", "salary", "equity"}

// user

type UserSt struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

type UserWithJobsSt struct {
	UserSt
	Jobs []int64 `json:"jobs"`
}

type UserCreateReqSt struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=5"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	IsAdmin   bool   `json:"isAdmin"`
}

type UserRegisterReqSt struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=5"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type UserLoginReqSt struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

var UserUpdateFields = []string{"firstName", "lastName", "password", "email"}
