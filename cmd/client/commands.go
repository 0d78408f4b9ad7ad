// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/craft-catalog/internal/adapter"
	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/models"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	run   func(ctx context.Context, s *session, fs *flag.FlagSet, args []string, out io.Writer) error
}

var commands = map[string]command{
	"token":    {usage: "-email E -password P", run: runToken},
	"register": {usage: "-name N -email E -password P", run: runRegister},
	"list":     {usage: "", run: runList},
	"get":      {usage: "-id ID", run: runGet},
	"create":   {usage: "-item-id N -name S -price F -description S -creator S [-material S] [-image FILE]", run: runCreate},
	"update":   {usage: "-id ID [-item-id N] [-name S] [-price F] [-description S] [-material S] [-creator S]", run: runUpdate},
	"delete":   {usage: "-id ID", run: runDelete},
}

func usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: client <command> [-token T] [flags]\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-8s %s\n", name, commands[name].usage)
	}
	return b.String()
}

// run executes one subcommand. Every command accepts -token, which
// overrides the token from the configuration.
func run(ctx context.Context, cfg config.Adapter, args []string, out io.Writer, log *logger.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	token := fs.String("token", cfg.Token, "session token")

	client, err := adapter.NewHTTPCatalogClient(cfg, log)
	if err != nil {
		return err
	}

	return cmd.run(ctx, &session{client: client, token: token}, fs, args[1:], out)
}

// session carries the client and the -token flag of one invocation.
type session struct {
	client adapter.CatalogClient
	token  *string
}

// authed returns the client with the -token flag applied. Flags are parsed
// by then.
func (s *session) authed() adapter.CatalogClient {
	if *s.token != "" {
		s.client.SetToken(*s.token)
	}
	return s.client
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func requireID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: -id must be positive", errUsage)
	}
	return nil
}

func runToken(ctx context.Context, s *session, fs *flag.FlagSet, args []string, out io.Writer) error {
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parse(fs, args); err != nil {
		return err
	}

	token, err := s.client.IssueToken(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}

func runRegister(ctx context.Context, s *session, fs *flag.FlagSet, args []string, out io.Writer) error {
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parse(fs, args); err != nil {
		return err
	}

	user, err := s.client.Register(ctx, models.SignUpRequest{Name: *name, Email: *email, Password: *password})
	if err != nil {
		return err
	}

	return printJSON(out, user)
}

func runList(ctx context.Context, s *session, fs *flag.FlagSet, args []string, out io.Writer) error {
	if err := parse(fs, args); err != nil {
		return err
	}

	items, err := s.authed().ListItems(ctx)
	if err != nil {
		return err
	}

	return printJSON(out, items)
}

func runGet(ctx context.Context, s *session, fs *flag.FlagSet, args []string, out io.Writer) error {
	id := fs.Int64("id", 0, "item id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}

	item, err := s.authed().GetItem(ctx, *id)
	if err != nil {
		return err
	}

	return printJSON(out, item)
}

func runCreate(ctx context.Context, s *session, fs *flag.FlagSet, args []string, out io.Writer) error {
	itemID := fs.Int64("item-id", 0, "external item id")
	name := fs.String("name", "", "unique item name")
	price := fs.Float64("price", 0, "price")
	description := fs.String("description", "", "description")
	material := fs.String("material", "", "material")
	creator := fs.String("creator", "", "creator")
	imagePath := fs.String("image", "", "path of a jpeg, png or gif image")
	if err := parse(fs, args); err != nil {
		return err
	}

	item := models.NewItem{ItemID: *itemID, Name: *name, Description: *description, Creator: *creator}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "price":
			item.SetPrice(*price)
		case "material":
			item.Material = material
		}
	})

	var image *models.ImageUpload
	if *imagePath != "" {
		file, err := os.Open(*imagePath)
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}
		defer file.Close()

		image, err = imageUpload(file)
		if err != nil {
			return err
		}
	}

	created, err := s.authed().CreateItem(ctx, item, image)
	if err != nil {
		return err
	}

	return printJSON(out, created)
}

// imageUpload detects the content type of file and rewinds it.
func imageUpload(file *os.File) (*models.ImageUpload, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("detect image type: %w", err)
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind image: %w", err)
	}

	return &models.ImageUpload{
		Filename:    filepath.Base(file.Name()),
		ContentType: mtype.String(),
		Content:     file,
	}, nil
}

func runUpdate(ctx context.Context, s *session, fs *flag.FlagSet, args []string, out io.Writer) error {
	id := fs.Int64("id", 0, "item id")
	itemID := fs.Int64("item-id", 0, "external item id")
	name := fs.String("name", "", "unique item name")
	price := fs.Float64("price", 0, "price")
	description := fs.String("description", "", "description")
	material := fs.String("material", "", "material")
	creator := fs.String("creator", "", "creator")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}

	var update models.ItemUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "item-id":
			update.ItemID = itemID
		case "name":
			update.Name = name
		case "price":
			update.Price = price
		case "description":
			update.Description = description
		case "material":
			update.Material = material
		case "creator":
			update.Creator = creator
		}
	})

	if err := s.authed().UpdateItem(ctx, *id, update); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "updated")
	return err
}

func runDelete(ctx context.Context, s *session, fs *flag.FlagSet, args []string, out io.Writer) error {
	id := fs.Int64("id", 0, "item id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}

	if err := s.authed().DeleteItem(ctx, *id); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "deleted")
	return err
}
