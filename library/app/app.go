package app

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/acceptinvitation"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/acceptloanrequest"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/addbook"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/addcontact"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/cancelinvitation"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/cancelloanrequest"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/declineinvitation"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/declineloanrequest"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/lendbook"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/registermember"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/removebook"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/requestloan"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/returnborrowedbook"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/returnloan"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/returnloanrequest"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/sendinvitation"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/setbooklendability"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/setlibrarysharing"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/bookavailability"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/borrowedbooks"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/contacts"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/invitations"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/loanrequests"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/loans"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/ownerlibrary"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/sharedlibrary"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell/observable"
)

// App bundles all handlers of the library.
type App struct {
	clock func() time.Time
	newID func() uuid.UUID

	// Social graph.
	registerMember    *observable.CommandWrapper[registermember.Command]
	addContact        *observable.CommandWrapper[addcontact.Command]
	setSharing        *observable.CommandWrapper[setlibrarysharing.Command]
	sendInvitation    *observable.CommandWrapper[sendinvitation.Command]
	acceptInvitation  *observable.CommandWrapper[acceptinvitation.Command]
	declineInvitation *observable.CommandWrapper[declineinvitation.Command]
	cancelInvitation  *observable.CommandWrapper[cancelinvitation.Command]

	// Custody.
	addBook            *observable.CommandWrapper[addbook.Command]
	setBookLendable    *observable.CommandWrapper[setbooklendability.Command]
	removeBook         *observable.CommandWrapper[removebook.Command]
	lendBook           *observable.CommandWrapper[lendbook.Command]
	returnLoan         *observable.CommandWrapper[returnloan.Command]
	returnBorrowedBook *observable.CommandWrapper[returnborrowedbook.Command]

	// Loan requests.
	requestLoan       *observable.CommandWrapper[requestloan.Command]
	acceptLoanRequest *observable.CommandWrapper[acceptloanrequest.Command]
	declineLoanReq    *observable.CommandWrapper[declineloanrequest.Command]
	cancelLoanReq     *observable.CommandWrapper[cancelloanrequest.Command]
	returnLoanReq     *observable.CommandWrapper[returnloanrequest.Command]

	// Read models.
	bookAvailability *observable.QueryWrapper[bookavailability.Query, bookavailability.BookAvailability]
	ownerLibrary     *observable.QueryWrapper[ownerlibrary.Query, ownerlibrary.OwnerLibrary]
	sharedLibrary    *observable.QueryWrapper[sharedlibrary.Query, sharedlibrary.SharedLibrary]
	loans            *observable.QueryWrapper[loans.Query, loans.Loans]
	borrowedBooks    *observable.QueryWrapper[borrowedbooks.Query, borrowedbooks.BorrowedBooks]
	loanRequests     *observable.QueryWrapper[loanrequests.Query, loanrequests.LoanRequests]
	invitations      *observable.QueryWrapper[invitations.Query, invitations.Invitations]
	contacts         *observable.QueryWrapper[contacts.Query, contacts.Contacts]
}

type settings struct {
	clock          func() time.Time
	newID          func() uuid.UUID
	logger         *slog.Logger
	metrics        shell.MetricsCollector
	metadataLookup addbook.MetadataLookup
	retry          []shell.RetryOption
}

// Option configures App.
type Option func(*settings)

// WithClock replaces time.Now, mostly for tests and the demo.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

// WithIDGenerator replaces the UUIDv7 id generator.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *settings) {
		s.newID = newID
	}
}

// WithLogger logs every command and query through logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMetrics records handler and retry metrics.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(s *settings) {
		s.metrics = collector
	}
}

// WithMetadataLookup lets AddBook fill missing fields from the ISBN.
func WithMetadataLookup(lookup addbook.MetadataLookup) Option {
	return func(s *settings) {
		s.metadataLookup = lookup
	}
}

// WithRetryOptions tunes the retry on concurrency conflicts for all commands.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(s *settings) {
		s.retry = append(s.retry, opts...)
	}
}

func newUUIDv7() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// New creates the App over es.
func New(es shell.EventStore, opts ...Option) (*App, error) {
	s := settings{clock: time.Now, newID: newUUIDv7}
	for _, opt := range opts {
		opt(&s)
	}

	a := &App{clock: s.clock, newID: s.newID}
	var err error

	if a.registerMember, err = wrapCommand[registermember.Command](
		registermember.NewCommandHandler(es, registermember.WithRetryOptions(retryOptions[registermember.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.addContact, err = wrapCommand[addcontact.Command](
		addcontact.NewCommandHandler(es, addcontact.WithRetryOptions(retryOptions[addcontact.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.setSharing, err = wrapCommand[setlibrarysharing.Command](
		setlibrarysharing.NewCommandHandler(es, setlibrarysharing.WithRetryOptions(retryOptions[setlibrarysharing.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.sendInvitation, err = wrapCommand[sendinvitation.Command](
		sendinvitation.NewCommandHandler(es, sendinvitation.WithRetryOptions(retryOptions[sendinvitation.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.acceptInvitation, err = wrapCommand[acceptinvitation.Command](
		acceptinvitation.NewCommandHandler(es, acceptinvitation.WithRetryOptions(retryOptions[acceptinvitation.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.declineInvitation, err = wrapCommand[declineinvitation.Command](
		declineinvitation.NewCommandHandler(es, declineinvitation.WithRetryOptions(retryOptions[declineinvitation.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.cancelInvitation, err = wrapCommand[cancelinvitation.Command](
		cancelinvitation.NewCommandHandler(es, cancelinvitation.WithRetryOptions(retryOptions[cancelinvitation.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	addBookOptions := []addbook.Option{addbook.WithRetryOptions(retryOptions[addbook.Command](s)...)}
	if s.metadataLookup != nil {
		addBookOptions = append(addBookOptions, addbook.WithMetadataLookup(s.metadataLookup))
	}
	if s.logger != nil {
		addBookOptions = append(addBookOptions, addbook.WithLogger(s.logger))
	}

	if a.addBook, err = wrapCommand[addbook.Command](addbook.NewCommandHandler(es, addBookOptions...), s); err != nil {
		return nil, err
	}

	if a.setBookLendable, err = wrapCommand[setbooklendability.Command](
		setbooklendability.NewCommandHandler(es, setbooklendability.WithRetryOptions(retryOptions[setbooklendability.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.removeBook, err = wrapCommand[removebook.Command](
		removebook.NewCommandHandler(es, removebook.WithRetryOptions(retryOptions[removebook.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.lendBook, err = wrapCommand[lendbook.Command](
		lendbook.NewCommandHandler(es, lendbook.WithRetryOptions(retryOptions[lendbook.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.returnLoan, err = wrapCommand[returnloan.Command](
		returnloan.NewCommandHandler(es, returnloan.WithRetryOptions(retryOptions[returnloan.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.returnBorrowedBook, err = wrapCommand[returnborrowedbook.Command](
		returnborrowedbook.NewCommandHandler(es, returnborrowedbook.WithRetryOptions(retryOptions[returnborrowedbook.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.requestLoan, err = wrapCommand[requestloan.Command](
		requestloan.NewCommandHandler(es, requestloan.WithRetryOptions(retryOptions[requestloan.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.acceptLoanRequest, err = wrapCommand[acceptloanrequest.Command](
		acceptloanrequest.NewCommandHandler(es, acceptloanrequest.WithRetryOptions(retryOptions[acceptloanrequest.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.declineLoanReq, err = wrapCommand[declineloanrequest.Command](
		declineloanrequest.NewCommandHandler(es, declineloanrequest.WithRetryOptions(retryOptions[declineloanrequest.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.cancelLoanReq, err = wrapCommand[cancelloanrequest.Command](
		cancelloanrequest.NewCommandHandler(es, cancelloanrequest.WithRetryOptions(retryOptions[cancelloanrequest.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.returnLoanReq, err = wrapCommand[returnloanrequest.Command](
		returnloanrequest.NewCommandHandler(es, returnloanrequest.WithRetryOptions(retryOptions[returnloanrequest.Command](s)...)), s,
	); err != nil {
		return nil, err
	}

	if a.bookAvailability, err = wrapQuery[bookavailability.Query, bookavailability.BookAvailability](bookavailability.NewQueryHandler(es), s); err != nil {
		return nil, err
	}

	if a.ownerLibrary, err = wrapQuery[ownerlibrary.Query, ownerlibrary.OwnerLibrary](ownerlibrary.NewQueryHandler(es), s); err != nil {
		return nil, err
	}

	if a.sharedLibrary, err = wrapQuery[sharedlibrary.Query, sharedlibrary.SharedLibrary](sharedlibrary.NewQueryHandler(es), s); err != nil {
		return nil, err
	}

	if a.loans, err = wrapQuery[loans.Query, loans.Loans](loans.NewQueryHandler(es), s); err != nil {
		return nil, err
	}

	if a.borrowedBooks, err = wrapQuery[borrowedbooks.Query, borrowedbooks.BorrowedBooks](borrowedbooks.NewQueryHandler(es), s); err != nil {
		return nil, err
	}

	if a.loanRequests, err = wrapQuery[loanrequests.Query, loanrequests.LoanRequests](loanrequests.NewQueryHandler(es), s); err != nil {
		return nil, err
	}

	if a.invitations, err = wrapQuery[invitations.Query, invitations.Invitations](invitations.NewQueryHandler(es), s); err != nil {
		return nil, err
	}

	if a.contacts, err = wrapQuery[contacts.Query, contacts.Contacts](contacts.NewQueryHandler(es), s); err != nil {
		return nil, err
	}

	return a, nil
}

func wrapCommand[C shell.Command](handler shell.CoreCommandHandler[C], s settings) (*observable.CommandWrapper[C], error) {
	var opts []observable.CommandOption[C]

	if s.logger != nil {
		opts = append(opts,
			observable.WithCommandLogging[C](s.logger),
			observable.WithCommandContextualLogging[C](s.logger),
		)
	}

	if s.metrics != nil {
		opts = append(opts, observable.WithCommandMetrics[C](s.metrics))
	}

	wrapper, err := observable.NewCommandWrapper(handler, opts...)
	if err != nil {
		var zero C
		return nil, fmt.Errorf("failed to create %s handler: %w", zero.CommandType(), err)
	}

	return wrapper, nil
}

func wrapQuery[Q shell.Query, R any](handler shell.CoreQueryHandler[Q, R], s settings) (*observable.QueryWrapper[Q, R], error) {
	var opts []observable.QueryOption[Q, R]

	if s.logger != nil {
		opts = append(opts,
			observable.WithQueryLogging[Q, R](s.logger),
			observable.WithQueryContextualLogging[Q, R](s.logger),
		)
	}

	if s.metrics != nil {
		opts = append(opts, observable.WithQueryMetrics[Q, R](s.metrics))
	}

	wrapper, err := observable.NewQueryWrapper(handler, opts...)
	if err != nil {
		var zero Q
		return nil, fmt.Errorf("failed to create %s handler: %w", zero.QueryType(), err)
	}

	return wrapper, nil
}

// retryOptions adds retry metrics labelled with the command type when a collector is configured.
func retryOptions[C shell.Command](s settings) []shell.RetryOption {
	opts := slices.Clone(s.retry)

	if s.metrics != nil {
		var zero C
		opts = append(opts, shell.WithMetrics(s.metrics, zero.CommandType()))
	}

	return opts
}

// parseID reads an entity id handed out by an earlier result or read model.
func parseID[C shell.Command](field string, id string) (uuid.UUID, error) {
	var zero C
	return core.ParseID(zero.CommandType(), field, id)
}
