package master

import (
	"context"
	"fmt"
	"time"

	"github.com/veritime/attend-backend-go/internal/domain/employee"
	"github.com/veritime/attend-backend-go/internal/domain/master/branch"
	"github.com/veritime/attend-backend-go/internal/domain/master/department"
	"github.com/veritime/attend-backend-go/internal/domain/master/device"
	"github.com/veritime/attend-backend-go/internal/domain/shift"
	"github.com/veritime/attend-backend-go/internal/pkg/cache"
)

// Cache TTLs: the employee directory churns more than the other masters.
const (
	employeesTTL = 5 * time.Minute
	mastersTTL   = 10 * time.Minute
)

const (
	keyEmployeesPrefix = "lookup:employees"
	keyBranches        = "lookup:branches:active"
	keyDepartments     = "lookup:departments:active"
	keyDevices         = "lookup:devices:active"
	keyShifts          = "lookup:shifts:active"
)

// LookupService serves the dropdown/master reads behind the report filters,
// backed by a best-effort redis cache in front of the repositories.
type LookupService struct {
	cache          *cache.Cache
	employeeRepo   employee.EmployeeRepository
	branchRepo     branch.BranchRepository
	departmentRepo department.DepartmentRepository
	deviceRepo     device.DeviceRepository
	shiftRepo      shift.ShiftRepository
}

func NewLookupService(
	c *cache.Cache,
	employeeRepo employee.EmployeeRepository,
	branchRepo branch.BranchRepository,
	departmentRepo department.DepartmentRepository,
	deviceRepo device.DeviceRepository,
	shiftRepo shift.ShiftRepository,
) *LookupService {
	return &LookupService{
		cache:          c,
		employeeRepo:   employeeRepo,
		branchRepo:     branchRepo,
		departmentRepo: departmentRepo,
		deviceRepo:     deviceRepo,
		shiftRepo:      shiftRepo,
	}
}

func employeesKey(departmentID *int64) string {
	if departmentID == nil {
		return keyEmployeesPrefix + ":active:all"
	}
	return fmt.Sprintf("%s:active:dept:%d", keyEmployeesPrefix, *departmentID)
}

// ActiveEmployees returns the active directory, cached per department filter.
func (s *LookupService) ActiveEmployees(ctx context.Context, departmentID *int64) ([]employee.Employee, error) {
	key := employeesKey(departmentID)

	var cached []employee.Employee
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	employees, err := s.employeeRepo.GetActive(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, employees, employeesTTL)
	return employees, nil
}

func (s *LookupService) ActiveBranches(ctx context.Context) ([]branch.Branch, error) {
	var cached []branch.Branch
	if s.cache.GetJSON(ctx, keyBranches, &cached) {
		return cached, nil
	}

	branches, err := s.branchRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, keyBranches, branches, mastersTTL)
	return branches, nil
}

func (s *LookupService) ActiveDepartments(ctx context.Context) ([]department.Department, error) {
	var cached []department.Department
	if s.cache.GetJSON(ctx, keyDepartments, &cached) {
		return cached, nil
	}

	departments, err := s.departmentRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, keyDepartments, departments, mastersTTL)
	return departments, nil
}

func (s *LookupService) ActiveDevices(ctx context.Context) ([]device.Device, error) {
	var cached []device.Device
	if s.cache.GetJSON(ctx, keyDevices, &cached) {
		return cached, nil
	}

	devices, err := s.deviceRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, keyDevices, devices, mastersTTL)
	return devices, nil
}

func (s *LookupService) ActiveShifts(ctx context.Context) ([]shift.WorkShift, error) {
	var cached []shift.WorkShift
	if s.cache.GetJSON(ctx, keyShifts, &cached) {
		return cached, nil
	}

	shifts, err := s.shiftRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, keyShifts, shifts, mastersTTL)
	return shifts, nil
}

// InvalidateEmployees drops every cached employee list, including the
// per-department variants.
func (s *LookupService) InvalidateEmployees(ctx context.Context) {
	s.cache.DeletePrefix(ctx, keyEmployeesPrefix)
}

func (s *LookupService) InvalidateShifts(ctx context.Context) {
	s.cache.Delete(ctx, keyShifts)
}

func (s *LookupService) InvalidateMasters(ctx context.Context) {
	s.cache.Delete(ctx, keyBranches, keyDepartments, keyDevices)
}
