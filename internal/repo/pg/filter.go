package pg

import (
	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/sqlf"
)

// Filter-clause builders. Predicates are appended in the declaration order
// of the entity's recognized filter fields, never in request enumeration
// order, so repeated calls with the same criteria yield identical SQL.

func companyWhere(pars entities.CompanyListParsSt) sqlf.ClauseSt {
	w := &sqlf.WhereSt{}

	if pars.MinEmployees != nil {
		w.Pred("num_employees >= "+sqlf.ValueMark, *pars.MinEmployees)
	}
	if pars.MaxEmployees != nil {
		w.Pred("num_employees <= "+sqlf.ValueMark, *pars.MaxEmployees)
	}
	if pars.Name != nil {
		w.Substr("name", *pars.Name)
	}

	return w.Build()
}

func jobWhere(pars entities.JobListParsSt) sqlf.ClauseSt {
	w := &sqlf.WhereSt{}

	if pars.MinSalary != nil {
		w.Pred("salary >= "+sqlf.ValueMark, *pars.MinSalary)
	}
	if pars.Title != nil {
		w.Substr("title", *pars.Title)
	}
	// A false flag means "no equity constraint", not "equity-free only".
	if pars.HasEquity != nil && *pars.HasEquity {
		w.Literal("equity > 0")
	}

	return w.Build()
}
