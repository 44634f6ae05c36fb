// Package handlers turns a chat message into a reply: it resolves the intent,
// extracts slots and reads or writes the ledger.
package handlers

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fundsbot/fundsbot/internal/extract"
	"github.com/fundsbot/fundsbot/internal/intent"
	"github.com/fundsbot/fundsbot/internal/models"
)

// Store is the ledger the handlers read and write.
type Store interface {
	InsertExpense(ctx context.Context, e *models.Expense) error
	InsertIncome(ctx context.Context, in *models.Income) error
	SumExpenses(ctx context.Context, f models.Filter) (decimal.Decimal, error)
	SumIncome(ctx context.Context, f models.Filter) (decimal.Decimal, error)
	ExpenseCategoryExists(ctx context.Context, c models.Category) (bool, error)
}

// Resolver picks the intent of a message.
type Resolver interface {
	Resolve(ctx context.Context, text string) intent.Resolution
}

// SpecialTrigger is the message that gets the image reply instead of a
// normal answer.
const SpecialTrigger = "-1"

const (
	EmptyMessageReply = "Received empty message. How can I help?"
	specialText       = "You cannot hack this Prachi!!!"
)

// SpecialPayload is the image reply sent for SpecialTrigger.
type SpecialPayload struct {
	Text      string `json:"text"`
	ImagePath string `json:"image_path"`
}

// Reply is what a transport shows the user. Special is set only for
// SpecialTrigger.
type Reply struct {
	Text    string
	Special *SpecialPayload
}

type Handlers struct {
	store        Store
	resolver     Resolver
	extract      *extract.Extractor
	specialImage string
	log          zerolog.Logger
}

func New(store Store, resolver Resolver, ex *extract.Extractor, specialImagePath string, log zerolog.Logger) *Handlers {
	return &Handlers{
		store:        store,
		resolver:     resolver,
		extract:      ex,
		specialImage: specialImagePath,
		log:          log,
	}
}

// HandleMessage answers one chat message. It never fails; storage and
// classification problems become apologetic replies.
func (h *Handlers) HandleMessage(ctx context.Context, text string) Reply {
	trimmed := strings.TrimSpace(text)
	switch trimmed {
	case "":
		return Reply{Text: EmptyMessageReply}
	case SpecialTrigger:
		h.log.Info().Msg("special trigger received")
		return Reply{Special: &SpecialPayload{Text: specialText, ImagePath: h.specialImage}}
	}

	res := h.resolver.Resolve(ctx, trimmed)
	h.log.Info().
		Str("intent", res.Intent.String()).
		Str("source", res.Source).
		Msg("handling message")

	return Reply{Text: h.Dispatch(ctx, res.Intent, trimmed)}
}

// Dispatch runs the handler for an already resolved intent.
func (h *Handlers) Dispatch(ctx context.Context, in intent.Intent, text string) string {
	switch in {
	case intent.AddExpense:
		return h.handleAddExpense(ctx, text)
	case intent.AddIncome:
		return h.handleAddIncome(ctx, text)
	case intent.CheckBalance:
		return h.handleCheckBalance(ctx)
	case intent.ShowByCategory:
		return h.handleShowByCategory(ctx, text)
	case intent.ShowByMonth:
		return h.handleShowByMonth(ctx, text)
	case intent.ShowByDate:
		return h.handleShowByDate(ctx, text)
	case intent.Greeting:
		return "👋 Hello! How can I help you with your finances?"
	case intent.Goodbye:
		return "👋 Goodbye! Feel free to reach out anytime."
	case intent.ThankYou:
		return "😊 You're welcome! Let me know if you need anything else."
	default:
		return unknownReply(text)
	}
}

func unknownReply(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "how are you"):
		return "I'm just a bot, but I'm ready to help with your finances!"
	case strings.Contains(lower, "help"):
		return "I can help you track income and expenses, check balances, and show summaries by date, month, or category. Try saying 'add 50 expense for food' or 'show my balance'."
	default:
		return "🤖 Sorry, I couldn't quite understand that. Could you please rephrase? You can ask me to add income/expenses, check balance, or show summaries."
	}
}

func (h *Handlers) logDate(op string, d extract.DateResult) {
	if d.Source == extract.DateDefaulted {
		h.log.Debug().Str("op", op).Str("date", d.String()).Msg("no date in message, using today")
	}
}
