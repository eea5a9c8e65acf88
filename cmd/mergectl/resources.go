package main

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/accounting"
	"github.com/merge-api/merge-go-client/ats"
	"github.com/merge-api/merge-go-client/crm"
	"github.com/merge-api/merge-go-client/filestorage"
	"github.com/merge-api/merge-go-client/hris"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/schema"
	"github.com/merge-api/merge-go-client/shared"
	"github.com/merge-api/merge-go-client/ticketing"
	"github.com/merge-api/merge-go-client/value"
)

// resource binds a model type to its API collection, e.g. hris.employees.
type resource struct {
	category string
	name     string
	model    string
	describe  func() (*schema.ModelDescriptor, error)
	validate  func(data []byte) error
	roundtrip func(data []byte) (value.Value, error)
	list      func(ctx context.Context, c *merge.Client, params *shared.ListParams, all bool) (any, error)
	get       func(ctx context.Context, c *merge.Client, id string, params *shared.RetrieveParams) (any, error)
}

func (r resource) String() string { return r.category + "." + r.name }

func entry[T any](category shared.CategoryEnum, name string) resource {
	cat := string(category)
	return resource{
		category: cat,
		name:     name,
		model:    reflect.TypeFor[T]().Name(),
		describe: model.Describe[T],
		validate: model.ValidateJSON[T],
		roundtrip: func(data []byte) (value.Value, error) {
			m, err := model.Unmarshal[T](data)
			if err != nil {
				return value.Null(), err
			}
			return model.Serialize(m)
		},
		list: func(ctx context.Context, c *merge.Client, params *shared.ListParams, all bool) (any, error) {
			r := merge.NewResource[T](c, cat, name)
			if all {
				return r.ListAll(ctx, params)
			}
			return r.List(ctx, params)
		},
		get: func(ctx context.Context, c *merge.Client, id string, params *shared.RetrieveParams) (any, error) {
			return merge.NewResource[T](c, cat, name).Retrieve(ctx, id, params)
		},
	}
}

var resources = func() []resource {
	rs := []resource{
		entry[hris.Employee](shared.CategoryHRIS, "employees"),
		entry[hris.Company](shared.CategoryHRIS, "companies"),
		entry[ats.Candidate](shared.CategoryATS, "candidates"),
		entry[ats.Application](shared.CategoryATS, "applications"),
		entry[crm.Contact](shared.CategoryCRM, "contacts"),
		entry[crm.Account](shared.CategoryCRM, "accounts"),
		entry[filestorage.File](shared.CategoryFileStorage, "files"),
		entry[filestorage.Folder](shared.CategoryFileStorage, "folders"),
		entry[ticketing.Ticket](shared.CategoryTicketing, "tickets"),
		entry[accounting.Invoice](shared.CategoryAccounting, "invoices"),
	}
	for _, cat := range []shared.CategoryEnum{
		shared.CategoryHRIS, shared.CategoryATS, shared.CategoryCRM,
		shared.CategoryFileStorage, shared.CategoryTicketing, shared.CategoryAccounting,
	} {
		rs = append(rs,
			entry[shared.AuditLogEvent](cat, "audit-trail"),
			entry[shared.SyncStatus](cat, "sync-status"),
		)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].String() < rs[j].String() })
	return rs
}()

// lookup finds a resource by "category.collection" (any case style, so
// hris.Employees and ats.auditTrail work) or by model name when that is
// unambiguous.
func lookup(name string) (resource, error) {
	if cat, coll, ok := strings.Cut(name, "."); ok {
		cat, coll = strings.ToLower(cat), strcase.ToKebab(coll)
		for _, r := range resources {
			if r.category == cat && r.name == coll {
				return r, nil
			}
		}
		return resource{}, fmt.Errorf("unknown resource %q", name)
	}

	var found []resource
	for _, r := range resources {
		if strcase.ToSnake(r.model) == strcase.ToSnake(name) {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return resource{}, fmt.Errorf("unknown resource %q", name)
	case 1:
		return found[0], nil
	default:
		names := make([]string, len(found))
		for i, r := range found {
			names[i] = r.String()
		}
		return resource{}, fmt.Errorf("model %q is served by %s; name one", name, strings.Join(names, ", "))
	}
}
