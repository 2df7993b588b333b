// Package console is the interactive front end: it turns command lines into
// calls on the student registry and the class ranking and prints the results.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"intraeng/internal/ranking"
	"intraeng/internal/student"
)

// Scoreboard is the part of the class ranking the console needs.
type Scoreboard interface {
	AddPoints(className string, points int)
	WinningClass() string
	List() []ranking.Standing
}

type commandFunc func(ctx context.Context, w io.Writer, args []string) error

type command struct {
	name  string
	usage string
	help  string
	run   commandFunc
}

type Handler struct {
	registry student.Registry
	ranking  Scoreboard
	logger   *slog.Logger
	output   string
	commands []command
}

func NewHandler(registry student.Registry, scoreboard Scoreboard, logger *slog.Logger, output string) *Handler {
	h := &Handler{
		registry: registry,
		ranking:  scoreboard,
		logger:   logger,
		output:   output,
	}
	h.registerCommands()
	return h
}

func (h *Handler) registerCommands() {
	h.commands = []command{
		{"enroll", `enroll age=<n> code=<10 digits> class="<Engenharia ...>" name="<full name>"`, "Enroll a student", h.enroll},
		{"students", "students", "List enrolled students", h.listStudents},
		{"update", `update <id> [age=<n>] [code=<digits>] [class="<text>"] [name="<text>"]`, "Change fields of an enrolled student", h.updateStudent},
		{"points", `points "<class>" <points>`, "Add points to a class (negative values allowed)", h.addPoints},
		{"ranking", "ranking", "Show classes ordered by score", h.showRanking},
		{"winner", "winner", "Show the class currently in first place", h.showWinner},
		{"help", "help", "Show this help message", h.help},
	}
}

// CommandNames lists every command the handler understands, quit included.
func (h *Handler) CommandNames() []string {
	names := make([]string, 0, len(h.commands)+2)
	for _, c := range h.commands {
		names = append(names, c.name)
	}
	return append(names, "quit", "exit")
}

// Execute runs one command line and reports whether the session should end.
// Failures are printed to w; they never end the session.
func (h *Handler) Execute(ctx context.Context, line string, w io.Writer) bool {
	args, err := splitArgs(strings.TrimSpace(line))
	if err != nil {
		h.printError(w, err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	name := strings.ToLower(args[0])
	if name == "quit" || name == "exit" {
		return true
	}

	cmd, ok := h.lookup(name)
	if !ok {
		h.printError(w, fmt.Errorf("unknown command %q (type help for commands)", args[0]))
		return false
	}

	if err := cmd.run(ctx, w, args[1:]); err != nil {
		if student.IsValidation(err) {
			h.logger.InfoContext(ctx, "command rejected", "command", name, "error", err)
		} else {
			h.logger.WarnContext(ctx, "command failed", "command", name, "error", err)
		}
		h.printError(w, err)
	}
	return false
}

func (h *Handler) lookup(name string) (command, bool) {
	for _, c := range h.commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func usageError(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}

func (h *Handler) enroll(ctx context.Context, w io.Writer, args []string) error {
	usage := h.usage("enroll")
	fields, err := parseFields(args, "age", "code", "class", "name")
	if err != nil {
		return fmt.Errorf("%w\n%s", err, usageError(usage))
	}
	for _, key := range []string{"age", "code", "class", "name"} {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("missing %s\n%w", key, usageError(usage))
		}
	}

	age, err := parseInt("age", fields["age"])
	if err != nil {
		return err
	}

	s, err := h.registry.Enroll(ctx, student.EnrollRequest{
		Age:            age,
		Name:           fields["name"],
		EnrollmentCode: fields["code"],
		ClassName:      fields["class"],
	})
	if err != nil {
		return err
	}

	if h.output == outputJSON {
		return writeJSON(w, s)
	}
	st := newStyles(w)
	_, _ = fmt.Fprintln(w, st.success.Render(fmt.Sprintf("Enrolled %s in %s (id %s)", s.Name(), s.ClassName(), s.ID())))
	return nil
}

func (h *Handler) listStudents(ctx context.Context, w io.Writer, args []string) error {
	if len(args) != 0 {
		return usageError(h.usage("students"))
	}
	students := h.registry.List(ctx)
	if h.output == outputJSON {
		return writeJSON(w, students)
	}
	renderStudents(w, students)
	return nil
}

func (h *Handler) updateStudent(ctx context.Context, w io.Writer, args []string) error {
	usage := h.usage("update")
	if len(args) < 2 {
		return usageError(usage)
	}

	fields, err := parseFields(args[1:], "age", "code", "class", "name")
	if err != nil {
		return fmt.Errorf("%w\n%s", err, usageError(usage))
	}

	var req student.UpdateRequest
	if v, ok := fields["age"]; ok {
		age, err := parseInt("age", v)
		if err != nil {
			return err
		}
		req.Age = &age
	}
	if v, ok := fields["code"]; ok {
		req.EnrollmentCode = &v
	}
	if v, ok := fields["class"]; ok {
		req.ClassName = &v
	}
	if v, ok := fields["name"]; ok {
		req.Name = &v
	}

	s, err := h.registry.Update(ctx, args[0], req)
	if err != nil {
		if errors.Is(err, student.ErrStudentNotFound) {
			return fmt.Errorf("no student with id %q", args[0])
		}
		return err
	}

	if h.output == outputJSON {
		return writeJSON(w, s)
	}
	st := newStyles(w)
	_, _ = fmt.Fprintln(w, st.success.Render(fmt.Sprintf("Updated %s (id %s)", s.Name(), s.ID())))
	return nil
}

// addPoints takes the last argument as the points, everything before it as
// the class name, so quoting multi-word class names is optional.
func (h *Handler) addPoints(ctx context.Context, w io.Writer, args []string) error {
	if len(args) < 2 {
		return usageError(h.usage("points"))
	}

	className := strings.Join(args[:len(args)-1], " ")
	points, err := parseInt("points", args[len(args)-1])
	if err != nil {
		return err
	}

	h.ranking.AddPoints(className, points)
	h.logger.InfoContext(ctx, "points added", "class", className, "points", points)

	_, _ = fmt.Fprintf(w, "Added %d points to %s\n", points, className)
	return nil
}

func (h *Handler) showRanking(ctx context.Context, w io.Writer, args []string) error {
	if len(args) != 0 {
		return usageError(h.usage("ranking"))
	}
	standings := h.ranking.List()
	if h.output == outputJSON {
		return writeJSON(w, standings)
	}
	renderRanking(w, standings)
	return nil
}

func (h *Handler) showWinner(ctx context.Context, w io.Writer, args []string) error {
	if len(args) != 0 {
		return usageError(h.usage("winner"))
	}
	winner := h.ranking.WinningClass()
	if h.output == outputJSON {
		return writeJSON(w, map[string]string{"winner": winner})
	}
	if winner == ranking.NoWinner {
		_, _ = fmt.Fprintln(w, "No class has scored yet")
		return nil
	}
	st := newStyles(w)
	_, _ = fmt.Fprintf(w, "Winning class: %s\n", st.winner.Render(winner))
	return nil
}

func (h *Handler) help(ctx context.Context, w io.Writer, args []string) error {
	_, _ = fmt.Fprintln(w, "Commands:")
	for _, c := range h.commands {
		_, _ = fmt.Fprintf(w, "  %-10s %s\n", c.name, c.help)
		if c.usage != c.name {
			_, _ = fmt.Fprintf(w, "  %-10s   %s\n", "", c.usage)
		}
	}
	_, _ = fmt.Fprintf(w, "  %-10s %s\n", "quit", "Leave the menu (also: exit)")
	return nil
}

func (h *Handler) usage(name string) string {
	c, _ := h.lookup(name)
	return c.usage
}

func (h *Handler) printError(w io.Writer, err error) {
	st := newStyles(w)
	_, _ = fmt.Fprintln(w, st.err.Render("Error: "+err.Error()))
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", field, value)
	}
	return n, nil
}
