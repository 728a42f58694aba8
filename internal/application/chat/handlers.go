package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/telco/backend/internal/domain/billing"
	"github.com/telco/backend/internal/domain/shared"
	"github.com/telco/backend/internal/domain/subscriber"
	"go.uber.org/zap"
)

// collaboratorFailureReply is shown whenever a lookup or write fails for
// reasons other than not-found or conflict. The conversation degrades to the
// menu; the engine never surfaces storage internals to the user.
const collaboratorFailureReply = "Something went wrong on our side. Please try again in a moment."

// handleOption parses a menu selection and dispatches to the per-option
// handler. Invalid input re-prompts without a state change.
func (e *Engine) handleOption(ctx context.Context, session *Session, message string) stepResult {
	option, err := strconv.Atoi(strings.TrimSpace(message))
	if err != nil || option < 1 || option > len(menuOptions) {
		return stepResult{reply: invalidOptionReply(), next: StateAwaitingOption}
	}

	session.SelectedOption = option

	switch option {
	case 1:
		return e.listSimTypes(ctx)
	case 2:
		return stepResult{
			reply: "**Update Personal Information**\n\n" +
				"Please provide your OIB (11-digit identification number), or send 0 to return to the main menu:",
			next: StateAwaitingOIB,
		}
	case 3:
		return stepResult{
			reply: "**Retrieve User Information**\n\n" +
				"Please provide your **OIB (11 digits)**.\n\nOr send 0 to return to the main menu.",
			next: StateAwaitingIdent,
		}
	case 4:
		return stepResult{
			reply: "**View Open Bills**\n\n" +
				"Please provide your Billing Account number (e.g., `9001242277`), or send 0 to return to the main menu:",
			next: StateAwaitingBABills,
		}
	case 5:
		return stepResult{
			reply: "**View Last Open Bill**\n\n" +
				"Please provide your Billing Account number (e.g., `9001242277`), or send 0 to return to the main menu:",
			next: StateAwaitingBALatest,
		}
	default:
		return stepResult{reply: invalidOptionReply(), next: StateAwaitingOption}
	}
}

// listSimTypes handles option 1: a self-contained flow that renders the SIM
// type catalog and returns straight to the menu.
func (e *Engine) listSimTypes(ctx context.Context) stepResult {
	simTypes, err := e.dir.ListSimTypes(ctx)
	if err != nil {
		return e.failure("list sim types", err)
	}

	if len(simTypes) == 0 {
		return resetToMenu("No SIM types available at the moment.")
	}

	return stepResult{
		reply: withMenu(renderSimTypes(simTypes)),
		next:  StateAwaitingOption,
		reset: true,
	}
}

// verifyOIBForUpdate validates the identifier, looks the customer up and
// presents the two-field choice, stashing the verified customer in context.
func (e *Engine) verifyOIBForUpdate(ctx context.Context, message string) stepResult {
	oib, err := subscriber.ValidateOIB(message)
	if err != nil {
		return stepResult{
			reply: fmt.Sprintf("%s Please provide a valid 11-digit OIB, or send 0 to return to the main menu.", err.Error()),
			next:  StateAwaitingOIB,
		}
	}

	customer, err := e.dir.FindCustomerByOIB(ctx, oib)
	if errors.Is(err, shared.ErrNotFound) {
		return resetToMenu(fmt.Sprintf("No customer found with OIB: %s", oib))
	}
	if err != nil {
		return e.failure("find customer by OIB", err)
	}

	reply := fmt.Sprintf("**Customer Found**\n\n**Name:** %s\n**Email:** %s\n\n"+
		"What would you like to update?\n1. Name\n2. Email\n\n"+
		"Reply with 1 or 2, or send 0 to return to the main menu:",
		customer.Name, orNA(customer.Email))

	return stepResult{
		reply: reply,
		next:  StateAwaitingField,
		context: map[string]string{
			ctxCustomerID: customer.ID.String(),
			ctxOIB:        oib,
		},
	}
}

// handleFieldSelection routes the two-field choice, preserving context on a
// bad answer.
func handleFieldSelection(message string, context map[string]string) stepResult {
	switch strings.TrimSpace(message) {
	case "1":
		return stepResult{
			reply:   "Please enter your new **name**, or send 0 to return to the main menu:",
			next:    StateAwaitingName,
			context: context,
		}
	case "2":
		return stepResult{
			reply:   "Please enter your new **email address**, or send 0 to return to the main menu:",
			next:    StateAwaitingEmail,
			context: context,
		}
	default:
		return stepResult{
			reply:   "Invalid choice. Please reply with 1 (Name) or 2 (Email), or send 0 to return to the main menu:",
			next:    StateAwaitingField,
			context: context,
		}
	}
}

// applyNameUpdate commits the trimmed message as the customer's new name
func (e *Engine) applyNameUpdate(ctx context.Context, session *Session, message string) stepResult {
	customerID, ok := contextCustomerID(session)
	if !ok {
		// Unreachable through the normal flow; degrade to the menu.
		return stepResult{reply: MenuText(), next: StateAwaitingOption, reset: true}
	}

	customer, err := e.dir.FindCustomerByID(ctx, customerID)
	if errors.Is(err, shared.ErrNotFound) {
		return resetToMenu("Customer not found.")
	}
	if err != nil {
		return e.failure("find customer by id", err)
	}

	oldName := customer.Name
	updated, err := e.dir.UpdateCustomerName(ctx, customerID, strings.TrimSpace(message))
	if err != nil {
		return e.failure("update customer name", err)
	}

	return resetToMenu(fmt.Sprintf(
		"**Name Updated Successfully!**\n\n**Old Name:** %s\n**New Name:** %s",
		oldName, updated.Name))
}

// applyEmailUpdate commits the trimmed message as the customer's new email.
// A duplicate address owned by another customer aborts the write.
func (e *Engine) applyEmailUpdate(ctx context.Context, session *Session, message string) stepResult {
	customerID, ok := contextCustomerID(session)
	if !ok {
		return stepResult{reply: MenuText(), next: StateAwaitingOption, reset: true}
	}

	customer, err := e.dir.FindCustomerByID(ctx, customerID)
	if errors.Is(err, shared.ErrNotFound) {
		return resetToMenu("Customer not found.")
	}
	if err != nil {
		return e.failure("find customer by id", err)
	}

	newEmail := strings.TrimSpace(message)
	oldEmail := customer.Email

	updated, err := e.dir.UpdateCustomerEmail(ctx, customerID, newEmail)
	if errors.Is(err, shared.ErrAlreadyExists) {
		return resetToMenu(fmt.Sprintf("Email %s is already in use by another customer.", newEmail))
	}
	if err != nil {
		return e.failure("update customer email", err)
	}

	return resetToMenu(fmt.Sprintf(
		"**Email Updated Successfully!**\n\n**Old Email:** %s\n**New Email:** %s",
		orNA(oldEmail), updated.Email))
}

// fetchCustomerInfo handles the retrieve-info flow: validate the identifier,
// look the customer up and enumerate their SIM assignments.
func (e *Engine) fetchCustomerInfo(ctx context.Context, message string) stepResult {
	oib, err := subscriber.ValidateOIB(message)
	if err != nil {
		return stepResult{
			reply: fmt.Sprintf("%s Please provide a valid 11-digit OIB, or send 0 to return to the main menu.", err.Error()),
			next:  StateAwaitingIdent,
		}
	}

	customer, err := e.dir.FindCustomerByOIB(ctx, oib)
	if errors.Is(err, shared.ErrNotFound) {
		return resetToMenu(fmt.Sprintf("No customer found with OIB: %s", oib))
	}
	if err != nil {
		return e.failure("find customer by OIB", err)
	}

	assignments, err := e.dir.ListAssignments(ctx, customer.ID)
	if err != nil {
		return e.failure("list assignments", err)
	}

	return resetToMenu(renderCustomerInfo(customer, assignments))
}

// fetchOpenBills handles the open-bills flow for one account number
func (e *Engine) fetchOpenBills(ctx context.Context, message string) stepResult {
	account, result, ok := e.lookupAccount(ctx, message, StateAwaitingBABills)
	if !ok {
		return result
	}

	holder, err := e.dir.FindCustomerByID(ctx, account.CustomerID)
	if err != nil {
		return e.failure("find account holder", err)
	}

	bills, err := e.dir.ListOpenBills(ctx, account.ID)
	if err != nil {
		return e.failure("list open bills", err)
	}

	if len(bills) == 0 {
		return resetToMenu(renderNoOpenBills(account.AccountNumber, holder.Name))
	}
	return resetToMenu(renderOpenBills(account.AccountNumber, holder.Name, bills))
}

// fetchLatestOpenBill handles the last-open-bill flow, including the bill's
// invoice items.
func (e *Engine) fetchLatestOpenBill(ctx context.Context, message string) stepResult {
	account, result, ok := e.lookupAccount(ctx, message, StateAwaitingBALatest)
	if !ok {
		return result
	}

	holder, err := e.dir.FindCustomerByID(ctx, account.CustomerID)
	if err != nil {
		return e.failure("find account holder", err)
	}

	bill, err := e.dir.LatestOpenBill(ctx, account.ID)
	if errors.Is(err, shared.ErrNotFound) {
		return resetToMenu(renderNoOpenBills(account.AccountNumber, holder.Name))
	}
	if err != nil {
		return e.failure("latest open bill", err)
	}

	items, err := e.dir.ListInvoiceItems(ctx, bill.ID)
	if err != nil {
		return e.failure("list invoice items", err)
	}

	lines := make([]chargeLine, 0, len(items))
	for _, item := range items {
		line := chargeLine{item: item}
		if item.ItemType == billing.InvoiceItemTypePlan && item.PlanID != nil {
			plan, err := e.dir.FindPlan(ctx, *item.PlanID)
			if err != nil {
				return e.failure("find plan", err)
			}
			line.planName = plan.Name
		}
		lines = append(lines, line)
	}

	return resetToMenu(renderLatestBill(account.AccountNumber, holder.Name, bill, lines))
}

// lookupAccount validates an account number and resolves the billing
// account. On a validation error it re-prompts in promptState; on not-found
// it resets to the menu. ok is true only when the account was resolved.
func (e *Engine) lookupAccount(ctx context.Context, message string, promptState State) (*billing.BillingAccount, stepResult, bool) {
	number, err := billing.ValidateAccountNumber(message)
	if err != nil {
		return nil, stepResult{
			reply: err.Error() + " Or send 0 to return to the main menu.",
			next:  promptState,
		}, false
	}

	account, err := e.dir.FindBillingAccount(ctx, number)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, resetToMenu(fmt.Sprintf("No billing account found with number: %s", number)), false
	}
	if err != nil {
		return nil, e.failure("find billing account", err), false
	}
	return account, stepResult{}, true
}

// failure logs a collaborator error and resets the conversation to the menu
// with a generic message. This is the only place, outside explicit user
// resets, where state is force-reset.
func (e *Engine) failure(op string, err error) stepResult {
	e.logger.Error("chat collaborator failure", zap.String("op", op), zap.Error(err))
	return resetToMenu(collaboratorFailureReply)
}

// resetToMenu builds a flow-terminal result: message plus the full menu
func resetToMenu(message string) stepResult {
	return stepResult{
		reply: withMenu(message),
		next:  StateAwaitingOption,
		reset: true,
	}
}

func contextCustomerID(session *Session) (uuid.UUID, bool) {
	raw, ok := session.Context[ctxCustomerID]
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
