package chat

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/telco/backend/internal/domain/billing"
	"github.com/telco/backend/internal/domain/subscriber"
)

// maxListedSims caps the SIM assignments shown in the customer info block.
const maxListedSims = 5

func formatEUR(amount decimal.Decimal) string {
	return "EUR " + amount.StringFixed(2)
}

func renderSimTypes(simTypes []subscriber.SimType) string {
	var b strings.Builder
	b.WriteString("**Available SIM Card Types:**\n\n")
	for _, st := range simTypes {
		price := "FREE"
		if st.Price.IsPositive() {
			price = formatEUR(st.Price)
		}
		fmt.Fprintf(&b, "**%s**\n", st.Name)
		if st.Description != "" {
			fmt.Fprintf(&b, "   %s\n", st.Description)
		}
		fmt.Fprintf(&b, "   Price: %s\n\n", price)
	}
	return b.String()
}

func renderCustomerInfo(customer *subscriber.Customer, assignments []subscriber.AssignedSim) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Customer Information**\n\n")
	fmt.Fprintf(&b, "**ID:** %s\n", customer.ID)
	fmt.Fprintf(&b, "**Name:** %s\n", customer.Name)
	fmt.Fprintf(&b, "**Email:** %s\n", orNA(customer.Email))
	fmt.Fprintf(&b, "**OIB:** %s\n", customer.OIB)
	fmt.Fprintf(&b, "**Created:** %s\n\n", customer.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Assigned SIM Cards:** %d\n", len(assignments))

	if len(assignments) > 0 {
		b.WriteString("\n")
		shown := assignments
		if len(shown) > maxListedSims {
			shown = shown[:maxListedSims]
		}
		for i, a := range shown {
			fmt.Fprintf(&b, "\n%d. **%s** (%s) - %s", i+1, a.Sim.ICCID, a.Sim.Carrier, a.Sim.Status)
			fmt.Fprintf(&b, "\n   Assigned: %s", a.Assignment.AssignedAt.Format("2006-01-02"))
		}
		if len(assignments) > maxListedSims {
			fmt.Fprintf(&b, "\n\n... and %d more SIM(s)", len(assignments)-maxListedSims)
		}
	}
	return b.String()
}

func renderNoOpenBills(accountNumber, customerName string) string {
	return fmt.Sprintf("**No Open Bills**\n\n"+
		"**Billing Account:** %s\n**Customer:** %s\n\n"+
		"You have no open bills at this time.",
		accountNumber, customerName)
}

func renderOpenBills(accountNumber, customerName string, bills []billing.Bill) string {
	var b strings.Builder
	b.WriteString("**Open Bills**\n\n")
	fmt.Fprintf(&b, "**Billing Account:** %s\n", accountNumber)
	fmt.Fprintf(&b, "**Customer:** %s\n", customerName)
	fmt.Fprintf(&b, "**Number of Open Bills:** %d\n\n", len(bills))

	for _, bill := range bills {
		fmt.Fprintf(&b, "\n[%s] **%s**", statusLabel(bill.Status), bill.BillMonth)
		fmt.Fprintf(&b, "\n   Amount: %s", formatEUR(bill.TotalAmount))
		fmt.Fprintf(&b, "\n   Status: %s", capitalize(string(bill.Status)))
		if bill.DueDate != nil {
			fmt.Fprintf(&b, "\n   Due: %s", bill.DueDate.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// chargeLine pairs an invoice item with its resolved plan name, if any.
type chargeLine struct {
	item     billing.InvoiceItem
	planName string
}

func renderLatestBill(accountNumber, customerName string, bill *billing.Bill, lines []chargeLine) string {
	var b strings.Builder
	b.WriteString("**Latest Open Bill**\n\n")
	fmt.Fprintf(&b, "**Billing Account:** %s\n", accountNumber)
	fmt.Fprintf(&b, "**Customer:** %s\n\n", customerName)
	fmt.Fprintf(&b, "[ %s ] **Bill for %s**\n", statusLabel(bill.Status), bill.BillMonth)
	fmt.Fprintf(&b, "**Status:** %s\n", capitalize(string(bill.Status)))
	fmt.Fprintf(&b, "**Total Amount:** %s\n", formatEUR(bill.TotalAmount))
	if bill.DueDate != nil {
		fmt.Fprintf(&b, "**Due Date:** %s\n", bill.DueDate.Format("2006-01-02"))
	}

	if len(lines) > 0 {
		b.WriteString("\n**Invoice Items:**\n")
		for _, line := range lines {
			switch line.item.ItemType {
			case billing.InvoiceItemTypePlan:
				fmt.Fprintf(&b, "\n- Plan: %s", line.planName)
			case billing.InvoiceItemTypeExtraCost:
				fmt.Fprintf(&b, "\n- Extra cost: %s", line.item.ExtraCostType)
				if line.item.Description != "" {
					fmt.Fprintf(&b, " - %s", line.item.Description)
				}
			}
			fmt.Fprintf(&b, "\n   Amount: %s\n", formatEUR(line.item.Amount))
		}
	}
	return b.String()
}

func statusLabel(status billing.BillStatus) string {
	if status == billing.BillStatusOverdue {
		return "OVERDUE"
	}
	return "PENDING"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
