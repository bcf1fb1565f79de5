package user_test

import (
	"context"
	"fmt"

	"github.com/spachava753/podkit/pod"
	"github.com/spachava753/podkit/resolve"
	"github.com/spachava753/podkit/user"
)

func composeRetitleColleagueIfSameCompany(ctx context.Context, conn *pod.Connection, email string) error {
	same, known, err := user.SameRealm(ctx, conn, resolve.Email(email))
	if err != nil {
		return err
	}
	if !known {
		return fmt.Errorf("no user with email %s", email)
	}
	if !same {
		return nil
	}

	title := "Staff Engineer"
	out, err := user.Update(ctx, conn, user.UpdateInput{
		User:    resolve.Email(email),
		Changes: user.Changes{Title: &title},
	})
	if err != nil {
		return err
	}
	if out.User == nil {
		return fmt.Errorf("user %s disappeared before update", email)
	}
	return nil
}

func composeRecordsFromDecodedRows(ctx context.Context, conn *pod.Connection, rows []map[string]any) ([]resolve.Record, error) {
	var records []resolve.Record
	for _, row := range rows {
		id, err := resolve.FromValue(row)
		if err != nil {
			return nil, err
		}
		rec, err := user.ResolveToRecord(ctx, conn, id)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			records = append(records, rec)
		}
	}
	return records, nil
}

func composeRenameWithConfiguredCapabilities(ctx context.Context, cfg pod.Config, username string) error {
	conn, err := pod.Connect(cfg)
	if err != nil {
		return err
	}
	mutable, err := user.ParseFields(cfg.MutableUserFields)
	if err != nil {
		return err
	}

	target, err := user.ResolveByUsername(ctx, conn, username)
	if err != nil || target == nil {
		return err
	}
	newName := username + "-archived"
	_, err = user.Update(ctx, conn, user.UpdateInput{
		User:    resolve.Entity{Value: target},
		Changes: user.Changes{Username: &newName},
		Mutable: mutable,
	})
	return err
}
