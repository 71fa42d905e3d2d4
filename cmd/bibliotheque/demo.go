package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore/memengine"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/app"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/addbook"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/loanrequests"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell/config"
)

func newDemoCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a lending scenario against an in-memory store and print the read models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := config.NewLogger(os.Stderr, logLevel, config.LogFormatText)
			if err != nil {
				return err
			}

			es, err := memengine.NewEventStore(memengine.WithLogger(logger))
			if err != nil {
				return err
			}

			library, err := app.New(es, app.WithLogger(logger), app.WithMetadataLookup(demoCatalogue{}))
			if err != nil {
				return err
			}

			return runDemo(cmd.Context(), library, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level of the handlers")

	return cmd
}

const (
	aliceID = "demo-alice"
	bobID   = "demo-bob"
)

func runDemo(ctx context.Context, library *app.App, out io.Writer) error {
	for _, m := range []struct{ id, username string }{{aliceID, "alice"}, {bobID, "bob"}} {
		if _, err := library.RegisterMember(ctx, m.id, m.username, m.username+"@example.org"); err != nil {
			return err
		}
	}

	invitation, err := library.SendInvitation(ctx, aliceID, bobID, "fancy swapping books?")
	if err != nil {
		return err
	}

	if _, err = library.AcceptInvitation(ctx, invitation.EntityID, bobID); err != nil {
		return err
	}

	addressBook, err := library.Contacts(ctx, aliceID)
	if err != nil {
		return err
	}

	for _, c := range addressBook.Contacts {
		if c.LinkedUserID == bobID {
			if _, err = library.SetLibrarySharing(ctx, aliceID, c.ContactID, true); err != nil {
				return err
			}
		}
	}

	// Title, author and publisher come from the catalogue.
	kindred, err := library.AddBook(ctx, aliceID, core.BookFields{ISBN: "9780807083697", IsLendable: true})
	if err != nil {
		return err
	}

	dune, err := library.AddBook(ctx, aliceID, core.BookFields{Title: "Dune", Author: "Frank Herbert", IsLendable: true})
	if err != nil {
		return err
	}

	due := time.Now().AddDate(0, 0, 14)
	if _, err = library.LendBook(ctx, aliceID, dune.EntityID, core.ContactByName{Name: "Marie"}, nil, &due, ""); err != nil {
		return err
	}

	if _, err = library.AddBorrowedBook(
		ctx, aliceID, core.BookFields{Title: "Piranesi"}, core.ContactByName{Name: "Paul"}, nil, nil, "from the book club",
	); err != nil {
		return err
	}

	request, err := library.RequestLoan(ctx, bobID, kindred.EntityID, "could I read this next?", nil)
	if err != nil {
		return err
	}

	if _, err = library.AcceptLoanRequest(ctx, request.EntityID, aliceID, &due, "enjoy"); err != nil {
		return err
	}

	collection, err := library.OwnerLibrary(ctx, aliceID, "")
	if err != nil {
		return err
	}

	shared, err := library.SharedLibrary(ctx, bobID, aliceID)
	if err != nil {
		return err
	}

	requests, err := library.LoanRequests(ctx, bobID, loanrequests.Outgoing)
	if err != nil {
		return err
	}

	return printJSON(out, map[string]any{
		"alice_library":      collection,
		"shared_with_bob":    shared,
		"bob_loan_requests":  requests,
		"alice_address_book": addressBook,
	})
}

func printJSON(out io.Writer, v any) error {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(b))

	return err
}

var errUnknownISBN = errors.New("unknown isbn")

// demoCatalogue stands in for an ISBN metadata service.
type demoCatalogue struct{}

func (demoCatalogue) LookupISBN(_ context.Context, isbn string) (addbook.Metadata, error) {
	if isbn == "9780807083697" {
		return addbook.Metadata{Title: "Kindred", Author: "Octavia E. Butler", Publisher: "Beacon Press"}, nil
	}

	return addbook.Metadata{}, errUnknownISBN
}
