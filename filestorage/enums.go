package filestorage

import "github.com/merge-api/merge-go-client/enum"

// PermissionTypeEnum is who a permission is granted to.
type PermissionTypeEnum string

const (
	PermissionUser    PermissionTypeEnum = "USER"
	PermissionGroup   PermissionTypeEnum = "GROUP"
	PermissionCompany PermissionTypeEnum = "COMPANY"
	PermissionAnyone  PermissionTypeEnum = "ANYONE"
)

var permissionTypeMapping = enum.Define("PermissionTypeEnum",
	PermissionUser, PermissionGroup, PermissionCompany, PermissionAnyone)

func (PermissionTypeEnum) Mapping() *enum.Mapping { return permissionTypeMapping }

// RolesEnum is an access level granted by a permission.
type RolesEnum string

const (
	RoleRead  RolesEnum = "READ"
	RoleWrite RolesEnum = "WRITE"
	RoleOwner RolesEnum = "OWNER"
)

var rolesMapping = enum.Define("RolesEnum", RoleRead, RoleWrite, RoleOwner)

func (RolesEnum) Mapping() *enum.Mapping { return rolesMapping }
