package common

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// AskConfirmation prompts the user for confirmation.
// Only "y" or "yes" (any case) confirms; EOF or anything else declines.
// AskConfirmation 提示用户确认，仅 "y" 或 "yes"（不区分大小写）视为确认。
func AskConfirmation(in io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(in)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
