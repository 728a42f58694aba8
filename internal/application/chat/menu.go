package chat

import (
	"fmt"
	"strings"
)

// menuOptions is the fixed numbered main menu; option number is index+1.
// The mapping is configuration, not logic: handlers are dispatched by number
// in handleOption.
var menuOptions = []string{
	"Tell me which type of SIM cards I can get in your company",
	"I want to change my personal information",
	"Retrieve User Information",
	"Give me my open bills",
	"Give me my last open bill",
}

// MenuText renders the full numbered main menu
func MenuText() string {
	var b strings.Builder
	b.WriteString("**What can I help you with?**\n\n")
	for i, desc := range menuOptions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, desc)
	}
	fmt.Fprintf(&b, "\nReply with a number (1-%d) to select an option.", len(menuOptions))
	return b.String()
}

// withMenu appends the separator and full menu to a flow-terminal message,
// so the user always sees their result and the next choices in one reply.
// In-flow prompts never go through here.
func withMenu(message string) string {
	return strings.TrimSpace(message) + "\n\n---\n\n" + MenuText()
}

// invalidOptionReply is the re-prompt for unparseable menu input
func invalidOptionReply() string {
	return fmt.Sprintf("Invalid option. Please enter a valid number (1-%d), or send 0 to return to the main menu.", len(menuOptions))
}
