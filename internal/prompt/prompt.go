package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Session reads interactive answers line by line.
type Session struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewSession(r io.Reader, w io.Writer) *Session {
	return &Session{reader: bufio.NewReader(r), writer: w}
}

// Ask prints the prompt and returns the trimmed answer line.
func (s *Session) Ask(prompt string) (string, error) {
	fmt.Fprint(s.writer, prompt)
	line, err := s.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskRequired re-prompts until the answer is non-empty.
func (s *Session) AskRequired(prompt string) (string, error) {
	for {
		answer, err := s.Ask(prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(s.writer, "A value is required.")
	}
}

// AskYesNo re-prompts until the answer is a yes/no variant.
func (s *Session) AskYesNo(prompt string) (bool, error) {
	for {
		answer, err := s.Ask(prompt + " (yes/no): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(s.writer, "Please answer yes or no.")
	}
}
