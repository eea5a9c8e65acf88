package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/value"
)

type syncState string

const (
	syncStateSyncing syncState = "SYNCING"
	syncStateDone    syncState = "DONE"
	syncStateFailed  syncState = "FAILED"
)

var syncStateMapping = enum.Define("syncState", syncStateSyncing, syncStateDone, syncStateFailed)

func (syncState) Mapping() *enum.Mapping { return syncStateMapping }

type category string

var categoryMapping = enum.NewMapping("category", "HRIS", "ATS")

func (category) Mapping() *enum.Mapping { return categoryMapping }

type person struct {
	Base

	ID       *string               `json:"id"`
	Name     *string               `json:"name" validate:"required,max=10"`
	Age      *int                  `json:"age"`
	Score    *float64              `json:"score"`
	Active   *bool                 `json:"active"`
	Salary   *decimal.Decimal      `json:"salary"`
	Category *category             `json:"category"`
	State    *enum.Open[syncState] `json:"state"`
	Tags     []string              `json:"tags"`
	Custom   map[string]string     `json:"custom_fields"`
	Extra    value.Value           `json:"extra"`
	Manager  *Expandable[person]   `json:"manager"`
	Reports  []*person             `json:"reports"`
	BornAt   *time.Time            `json:"born_at"`
	Ignored  string                `json:"-"`
}

type statusHolder struct {
	Base

	Status *enum.Open[syncState] `json:"status"`
}

func str(s string) *string { return &s }
