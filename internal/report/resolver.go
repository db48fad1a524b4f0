package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/user/school_stats/internal/parser"
)

const (
	PromptText          = "Please enter the high school name or school code: "
	InvalidInputMessage = "You must enter a valid school name or code."
)

// ErrNoInput is returned when input ends before a valid school is entered.
var ErrNoInput = errors.New("input ended before a valid school was entered")

var warnColor = color.New(color.FgRed)

// Resolver prompts for a school until the answer matches the directory.
type Resolver struct {
	dir *parser.SchoolDirectory
	in  *bufio.Reader
	out io.Writer
}

func NewResolver(dir *parser.SchoolDirectory, in io.Reader, out io.Writer) *Resolver {
	return &Resolver{dir: dir, in: bufio.NewReader(in), out: out}
}

// Check matches a single answer without prompting.
func (r *Resolver) Check(input string) (parser.School, bool) {
	return r.dir.Match(input)
}

// Resolve prompts until a line exactly matches a school code or name.
// Invalid answers of any length are reported and the prompt repeats. A final
// line without a newline still counts as an answer.
func (r *Resolver) Resolve() (parser.School, error) {
	for {
		fmt.Fprint(r.out, PromptText)
		line, err := r.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return parser.School{}, fmt.Errorf("failed to read input: %w", err)
		}
		if err != nil && line == "" {
			fmt.Fprintln(r.out)
			return parser.School{}, ErrNoInput
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if s, ok := r.Check(line); ok {
			return s, nil
		}
		warnColor.Fprintln(r.out, InvalidInputMessage)
	}
}
