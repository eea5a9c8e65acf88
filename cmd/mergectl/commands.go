package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/schema"
	"github.com/merge-api/merge-go-client/shared"
)

type SchemaCmd struct {
	Resources []string `arg:"" optional:"" help:"Resources to describe (e.g. hris.employees). Describes every model when empty."`
}

func (c *SchemaCmd) Run(g *Globals, e *env) error {
	if len(c.Resources) == 0 {
		for _, r := range resources {
			if _, err := r.describe(); err != nil {
				return fmt.Errorf("%s: %w", r, err)
			}
		}
		return e.printer(g).print(model.Registry().Models())
	}

	descs := make([]*schema.ModelDescriptor, 0, len(c.Resources))
	for _, name := range c.Resources {
		r, err := lookup(name)
		if err != nil {
			return err
		}
		d, err := r.describe()
		if err != nil {
			return fmt.Errorf("%s: %w", r, err)
		}
		descs = append(descs, d)
	}
	return e.printer(g).print(descs)
}

type ValidateCmd struct {
	Resource string `arg:"" help:"Resource or model the document must match."`
	File     string `arg:"" optional:"" default:"-" help:"JSON file to check; - reads stdin."`
}

func (c *ValidateCmd) Run(_ *Globals, e *env) error {
	r, err := lookup(c.Resource)
	if err != nil {
		return err
	}
	data, err := readInput(e, c.File)
	if err != nil {
		return err
	}
	err = r.validate(data)
	if err == nil {
		fmt.Fprintf(e.out, "ok: %s\n", r.model)
		return nil
	}
	problems := model.ValidationErrors(err)
	if len(problems) == 0 {
		return err
	}
	for _, p := range problems {
		fmt.Fprintln(e.out, p.Error())
	}
	return fmt.Errorf("%d validation problem(s)", len(problems))
}

type RoundtripCmd struct {
	Resource string `arg:"" help:"Resource or model to bind the document to."`
	File     string `arg:"" optional:"" default:"-" help:"JSON file to read; - reads stdin."`
}

func (c *RoundtripCmd) Run(g *Globals, e *env) error {
	r, err := lookup(c.Resource)
	if err != nil {
		return err
	}
	data, err := readInput(e, c.File)
	if err != nil {
		return err
	}
	v, err := r.roundtrip(data)
	if err != nil {
		return err
	}
	return e.printer(g).print(v)
}

type ListCmd struct {
	Resource          string   `arg:"" help:"Resource to list (e.g. hris.employees)."`
	PageSize          int      `help:"Results per page." name:"page-size"`
	Cursor            string   `help:"Cursor of the page to fetch."`
	All               bool     `help:"Follow cursors and print every result." short:"a"`
	Expand            []string `help:"Related objects to expand." sep:","`
	IncludeRemoteData bool     `help:"Include the provider's raw data." name:"include-remote-data"`
	IncludeDeleted    bool     `help:"Include objects deleted in the provider." name:"include-deleted"`
}

func (c *ListCmd) Run(g *Globals, e *env) error {
	r, err := lookup(c.Resource)
	if err != nil {
		return err
	}
	client, err := e.client(g)
	if err != nil {
		return err
	}
	params := &shared.ListParams{
		Cursor:   c.Cursor,
		PageSize: c.PageSize,
		Expand:   shared.Expand(c.Expand...),
	}
	if c.IncludeRemoteData {
		params.IncludeRemoteData = &c.IncludeRemoteData
	}
	if c.IncludeDeleted {
		params.IncludeDeletedData = &c.IncludeDeleted
	}
	out, err := r.list(e.ctx, client, params, c.All)
	if err != nil {
		return err
	}
	return e.printer(g).print(out)
}

type GetCmd struct {
	Resource          string   `arg:"" help:"Resource to read (e.g. hris.employees)."`
	ID                string   `arg:"" help:"Object ID."`
	Expand            []string `help:"Related objects to expand." sep:","`
	IncludeRemoteData bool     `help:"Include the provider's raw data." name:"include-remote-data"`
}

func (c *GetCmd) Run(g *Globals, e *env) error {
	r, err := lookup(c.Resource)
	if err != nil {
		return err
	}
	client, err := e.client(g)
	if err != nil {
		return err
	}
	params := &shared.RetrieveParams{Expand: shared.Expand(c.Expand...)}
	if c.IncludeRemoteData {
		params.IncludeRemoteData = &c.IncludeRemoteData
	}
	out, err := r.get(e.ctx, client, c.ID, params)
	if err != nil {
		return err
	}
	return e.printer(g).print(out)
}

func readInput(e *env, name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(e.in)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("%s: empty document", name)
	}
	return data, nil
}
