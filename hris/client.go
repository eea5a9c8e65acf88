package hris

import (
	"context"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
)

// Client groups the HRIS services.
type Client struct {
	*shared.Services

	Employees *EmployeesService
	Companies *CompaniesService
}

// New returns the HRIS services of c.
func New(c *merge.Client) *Client {
	return &Client{
		Services:  shared.NewServices(c, shared.CategoryHRIS),
		Employees: &EmployeesService{r: merge.NewResource[Employee](c, "hris", "employees")},
		Companies: &CompaniesService{r: merge.NewResource[Company](c, "hris", "companies")},
	}
}

// EmployeesService reads and writes employees.
type EmployeesService struct {
	r *merge.Resource[Employee]
}

// List returns one page of employees.
func (s *EmployeesService) List(ctx context.Context, params *EmployeeListParams, opts ...merge.RequestOption) (*model.Page[Employee], error) {
	return s.r.List(ctx, params, opts...)
}

// Pager walks every page of employees matching params.
func (s *EmployeesService) Pager(params *EmployeeListParams, opts ...merge.RequestOption) *merge.Pager[Employee] {
	return s.r.Pager(params, opts...)
}

// ListAll returns every employee matching params.
func (s *EmployeesService) ListAll(ctx context.Context, params *EmployeeListParams, opts ...merge.RequestOption) ([]*Employee, error) {
	return s.r.ListAll(ctx, params, opts...)
}

// Retrieve returns one employee.
func (s *EmployeesService) Retrieve(ctx context.Context, id string, params *EmployeeRetrieveParams, opts ...merge.RequestOption) (*Employee, error) {
	return s.r.Retrieve(ctx, id, params, opts...)
}

// RetrieveMany returns the employees with the given ids, fetched concurrently.
func (s *EmployeesService) RetrieveMany(ctx context.Context, ids []string, params *EmployeeRetrieveParams, opts ...merge.RequestOption) ([]*Employee, error) {
	return s.r.RetrieveMany(ctx, ids, params, opts...)
}

// Create creates an employee in the linked account's HRIS.
func (s *EmployeesService) Create(ctx context.Context, body *EmployeeRequest, opts ...merge.RequestOption) (*model.Response[Employee], error) {
	return s.r.Create(ctx, &model.WriteRequest[EmployeeRequest]{Model: body}, opts...)
}

// CompaniesService reads companies.
type CompaniesService struct {
	r *merge.Resource[Company]
}

// List returns one page of companies.
func (s *CompaniesService) List(ctx context.Context, params *CompanyListParams, opts ...merge.RequestOption) (*model.Page[Company], error) {
	return s.r.List(ctx, params, opts...)
}

// Retrieve returns one company.
func (s *CompaniesService) Retrieve(ctx context.Context, id string, params *shared.RetrieveParams, opts ...merge.RequestOption) (*Company, error) {
	return s.r.Retrieve(ctx, id, params, opts...)
}
