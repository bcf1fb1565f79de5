package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/spachava753/podkit/chat"
	"github.com/spachava753/podkit/presence"
	"github.com/spachava753/podkit/resolve"
	"github.com/spachava753/podkit/user"
)

var (
	userColumns = []string{
		user.KeyUserID, user.KeyUsername, user.KeyEmailAddress, user.KeyDisplayName,
		user.KeyTitle, user.KeyCompany, user.KeyDepartment, user.KeyLocation,
	}
	chatColumns = []string{
		chat.KeyStreamID, chat.KeyChatType, chat.KeyActive, chat.KeyCrossPod, chat.KeyMemberIDs,
	}
)

type updateFlag struct {
	flag  string
	field user.Field
}

// updateFlags maps podctl update flags to user fields.
var updateFlags = []updateFlag{
	{"first-name", user.FieldFirstName},
	{"last-name", user.FieldLastName},
	{"display-name", user.FieldDisplayName},
	{"title", user.FieldTitle},
	{"email", user.FieldEmailAddress},
	{"location", user.FieldLocation},
	{"department", user.FieldDepartment},
	{"username", user.FieldUsername},
	{"company", user.FieldCompany},
}

func (a *app) print(c *cli.Context, v view) error {
	f, err := parseFormat(c.String("output"))
	if err != nil {
		return err
	}
	return render(a.out, f, v)
}

func argIdentifier(c *cli.Context, i int) (resolve.Identifier, error) {
	return resolve.ParseIdentifier(c.Args().Get(i))
}

func (a *app) userCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "resolve and update users",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "show a user (the session user when ID is omitted)",
				ArgsUsage: "[ID | email | id:N | email:ADDR | username:NAME]",
				Action:    a.userGet,
			},
			{
				Name:      "realm",
				Usage:     "compare a user's company with the session user's",
				ArgsUsage: "ID",
				Action:    a.userRealm,
			},
			{
				Name:      "update",
				Usage:     "change attributes of a user",
				ArgsUsage: "ID",
				Flags: lo.Map(updateFlags, func(f updateFlag, _ int) cli.Flag {
					return &cli.StringFlag{Name: f.flag, Usage: "new " + string(f.field)}
				}),
				Action: a.userUpdate,
			},
		},
	}
}

func (a *app) userGet(c *cli.Context) error {
	conn, err := a.connect(c)
	if err != nil {
		return err
	}
	id, err := argIdentifier(c, 0)
	if err != nil {
		return err
	}
	rec, err := user.ResolveToRecord(c.Context, conn, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("user %s: %w", resolve.Describe(id), errNotFound)
	}
	return a.print(c, view{columns: userColumns, rows: []resolve.Record{rec}, single: true})
}

func (a *app) userRealm(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("user realm takes exactly one ID")
	}
	conn, err := a.connect(c)
	if err != nil {
		return err
	}
	id, err := argIdentifier(c, 0)
	if err != nil {
		return err
	}
	same, known, err := user.SameRealm(c.Context, conn, id)
	if err != nil {
		return err
	}
	rec := resolve.Record{"user": c.Args().First(), "known": known}
	if known {
		rec["same_realm"] = same
		rec["cross_realm"] = !same
	}
	return a.print(c, view{
		columns: []string{"user", "known", "same_realm", "cross_realm"},
		rows:    []resolve.Record{rec},
		single:  true,
	})
}

func (a *app) userUpdate(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("user update takes exactly one ID")
	}
	conn, err := a.connect(c)
	if err != nil {
		return err
	}
	id, err := argIdentifier(c, 0)
	if err != nil {
		return err
	}
	mutable, err := user.ParseFields(a.cfg.MutableUserFields)
	if err != nil {
		return err
	}

	var changes user.Changes
	for _, f := range updateFlags {
		if !c.IsSet(f.flag) {
			continue
		}
		setChange(&changes, f.field, c.String(f.flag))
	}

	out, err := user.Update(c.Context, conn, user.UpdateInput{User: id, Changes: changes, Mutable: mutable})
	if err != nil {
		return err
	}
	if out.User == nil {
		return fmt.Errorf("user %s: %w", resolve.Describe(id), errNotFound)
	}
	return a.print(c, view{columns: userColumns, rows: []resolve.Record{user.ToRecord(out.User)}, single: true})
}

func setChange(ch *user.Changes, field user.Field, value string) {
	v := &value
	switch field {
	case user.FieldFirstName:
		ch.FirstName = v
	case user.FieldLastName:
		ch.LastName = v
	case user.FieldDisplayName:
		ch.DisplayName = v
	case user.FieldTitle:
		ch.Title = v
	case user.FieldEmailAddress:
		ch.EmailAddress = v
	case user.FieldLocation:
		ch.Location = v
	case user.FieldDepartment:
		ch.Department = v
	case user.FieldUsername:
		ch.Username = v
	case user.FieldCompany:
		ch.Company = v
	}
}

func (a *app) chatCommand() *cli.Command {
	return &cli.Command{
		Name:  "chat",
		Usage: "resolve, list and start IM/MIM chats",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "show a chat by stream id",
				ArgsUsage: "STREAM_ID",
				Action:    a.chatGet,
			},
			{
				Name:   "list",
				Usage:  "list active chats of the session user",
				Action: a.chatList,
			},
			{
				Name:      "start",
				Usage:     "create or reopen a chat with one or more users",
				ArgsUsage: "ID...",
				Action:    a.chatStart,
			},
		},
	}
}

func (a *app) chatGet(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("chat get takes exactly one STREAM_ID")
	}
	conn, err := a.connect(c)
	if err != nil {
		return err
	}
	// Stream ids can be all digits or contain ':'; never parse them as user ids.
	id := resolve.Key(c.Args().First())
	rec, err := chat.ResolveToRecord(c.Context, conn, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("chat %s: %w", resolve.Describe(id), errNotFound)
	}
	return a.print(c, view{columns: chatColumns, rows: []resolve.Record{rec}, single: true})
}

func (a *app) chatList(c *cli.Context) error {
	conn, err := a.connect(c)
	if err != nil {
		return err
	}
	chats, err := chat.List(c.Context, conn)
	if err != nil {
		return err
	}
	rows := make([]resolve.Record, 0, len(chats))
	for i := range chats {
		rows = append(rows, chat.ToRecord(&chats[i]))
	}
	return a.print(c, view{columns: chatColumns, rows: rows})
}

func (a *app) chatStart(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("chat start needs at least one ID")
	}
	conn, err := a.connect(c)
	if err != nil {
		return err
	}
	ids := make([]resolve.Identifier, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		id, err := resolve.ParseIdentifier(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	started, err := chat.Start(c.Context, conn, ids...)
	if err != nil {
		return err
	}
	return a.print(c, view{columns: chatColumns, rows: []resolve.Record{chat.ToRecord(started)}, single: true})
}

func (a *app) presenceCommand() *cli.Command {
	return &cli.Command{
		Name:  "presence",
		Usage: "read and set presence",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "show the presence of a user (the session user when ID is omitted)",
				ArgsUsage: "[ID]",
				Action:    a.presenceGet,
			},
			{
				Name:      "set",
				Usage:     "set the presence of the session user",
				ArgsUsage: "CATEGORY",
				Action:    a.presenceSet,
			},
			{
				Name:   "categories",
				Usage:  "list presence categories",
				Action: a.presenceCategories,
			},
		},
	}
}

func (a *app) presenceGet(c *cli.Context) error {
	conn, err := a.connect(c)
	if err != nil {
		return err
	}
	id, err := argIdentifier(c, 0)
	if err != nil {
		return err
	}
	category, ok, err := presence.Get(c.Context, conn, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("presence of %s: %w", resolve.Describe(id), errNotFound)
	}
	return a.print(c, view{
		columns: []string{"user", "category"},
		rows:    []resolve.Record{{"user": resolve.Describe(id), "category": string(category)}},
		single:  true,
	})
}

func (a *app) presenceSet(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("presence set takes exactly one CATEGORY")
	}
	// Validate before connecting so typos never reach the pod.
	category, err := presence.Parse(c.Args().First())
	if err != nil {
		return err
	}
	conn, err := a.connect(c)
	if err != nil {
		return err
	}
	if err := presence.Set(c.Context, conn, string(category)); err != nil {
		return err
	}
	a.log.Info().Str("category", string(category)).Msg("presence updated")
	return nil
}

func (a *app) presenceCategories(c *cli.Context) error {
	rows := lo.Map(presence.Categories(), func(cat presence.Category, _ int) resolve.Record {
		return resolve.Record{"category": string(cat)}
	})
	return a.print(c, view{columns: []string{"category"}, rows: rows})
}
