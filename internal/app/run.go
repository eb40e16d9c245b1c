package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/coursegrid/internal/catalog"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/specialistvlad/coursegrid/internal/tracker"
)

const helpText = `Commands:
  list                  show every course and its state
  show <course>         show one course in detail
  approve <course>      mark a course as approved
  unapprove <course>    withdraw an approval
  toggle <course>       approve or unapprove
  why <course>          explain why a course is locked
  credits               show approved credits
  approved              list approved courses
  summary               count courses per state
  diagnostics           show catalog problems
  help                  show this text
  quit                  end the session
`

// errQuit ends the session loop without an error.
var errQuit = errors.New("quit")

// Run reads commands line by line from in until EOF or quit. When the input
// holds no command, the course list is printed once.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	scanner := bufio.NewScanner(in)
	commands := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands++
		if err := a.execute(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}

	if commands == 0 {
		if err := a.execute(ctx, "list"); err != nil {
			return err
		}
	}
	a.logger.Debug("App.Run method finished.", "commands", commands)
	return nil
}

// execute runs a single command line. Unknown courses, locked courses and
// bad commands are reported on the output and do not end the session.
func (a *App) execute(ctx context.Context, line string) error {
	verb, arg, _ := strings.Cut(line, " ")
	verb = strings.ToLower(verb)
	arg = strings.TrimSpace(arg)

	err := a.dispatch(ctx, verb, arg)
	if errors.Is(err, tracker.ErrUnknownCourse) || errors.Is(err, tracker.ErrCourseLocked) || errors.Is(err, errUsage) {
		fmt.Fprintf(a.outW, "error: %v\n", err)
		return nil
	}
	return err
}

var errUsage = errors.New("usage")

func needCourse(verb, arg string) error {
	if arg == "" {
		return fmt.Errorf("%w: %s <course>", errUsage, verb)
	}
	return nil
}

func (a *App) dispatch(ctx context.Context, verb, arg string) error {
	switch verb {
	case "quit", "exit":
		return errQuit

	case "help":
		fmt.Fprint(a.outW, helpText)
		return nil

	case "list":
		states := make(map[string]catalog.State, a.catalog.Len())
		for _, c := range a.catalog.Courses() {
			s, err := a.tracker.State(ctx, c.ID)
			if err != nil {
				return err
			}
			states[c.ID] = s
		}
		a.render.list(a.outW, a.catalog, states)
		return nil

	case "show":
		if err := needCourse(verb, arg); err != nil {
			return err
		}
		course, err := a.tracker.Resolve(arg)
		if err != nil {
			return err
		}
		state, err := a.tracker.State(ctx, course.ID)
		if err != nil {
			return err
		}
		reasons, err := a.tracker.UnsatisfiedReasons(ctx, course.ID)
		if err != nil {
			return err
		}
		a.render.show(a.outW, course, state, reasons)
		return nil

	case "approve":
		if err := needCourse(verb, arg); err != nil {
			return err
		}
		course, err := a.tracker.Approve(ctx, arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "%s: %s\n", course.DisplayName, a.render.state(catalog.Approved))
		return nil

	case "unapprove":
		if err := needCourse(verb, arg); err != nil {
			return err
		}
		course, err := a.tracker.Unapprove(ctx, arg)
		if err != nil {
			return err
		}
		state, err := a.tracker.State(ctx, course.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "%s: %s\n", course.DisplayName, a.render.state(state))
		return nil

	case "toggle":
		if err := needCourse(verb, arg); err != nil {
			return err
		}
		course, state, err := a.tracker.Toggle(ctx, arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "%s: %s\n", course.DisplayName, a.render.state(state))
		return nil

	case "why":
		if err := needCourse(verb, arg); err != nil {
			return err
		}
		course, err := a.tracker.Resolve(arg)
		if err != nil {
			return err
		}
		reasons, err := a.tracker.UnsatisfiedReasons(ctx, course.ID)
		if err != nil {
			return err
		}
		if len(reasons) == 0 {
			state, err := a.tracker.State(ctx, course.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.outW, "%s is %s\n", course.DisplayName, a.render.state(state))
			return nil
		}
		fmt.Fprintf(a.outW, "%s is %s:\n", course.DisplayName, a.render.state(catalog.Locked))
		a.render.reasons(a.outW, reasons)
		return nil

	case "credits":
		credits, err := a.tracker.ApprovedCredits(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "approved credits: %d/%d\n", credits, a.catalog.TotalCredits())
		return nil

	case "approved":
		ids, err := a.tracker.ApprovedSet(ctx)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Fprintln(a.outW, "no approved courses")
			return nil
		}
		for _, id := range ids {
			if c, ok := a.catalog.Course(id); ok {
				fmt.Fprintf(a.outW, "%s (%d cr)\n", c.DisplayName, c.Credits)
			}
		}
		return nil

	case "summary":
		s, err := a.tracker.Summary(ctx)
		if err != nil {
			return err
		}
		a.render.summary(a.outW, s)
		return nil

	case "diagnostics":
		diags := a.catalog.Diagnostics()
		if len(diags) == 0 {
			fmt.Fprintln(a.outW, "no diagnostics")
			return nil
		}
		for _, d := range diags {
			fmt.Fprintln(a.outW, d.String())
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown command %q, try help", errUsage, verb)
	}
}
