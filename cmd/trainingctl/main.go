// Command trainingctl drives the record store from a terminal. Mutations go
// through the same confirmation-gated flows the UI uses; --yes skips the
// interactive prompt for scripted runs.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/spec-kit/training-service/internal/api/dto"
	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/storeclient"
	"github.com/spec-kit/training-service/internal/workflow"
)

func main() {
	var (
		apiURL  = pflag.String("api", "http://127.0.0.1:5000", "record store base URL")
		yes     = pflag.Bool("yes", false, "approve every confirmation prompt")
		id      = pflag.String("id", "", "employee identifier (EMP#####)")
		name    = pflag.String("name", "", "employee name")
		email   = pflag.String("email", "", "employee email")
		dept    = pflag.String("department", "", "employee department")
		joining = pflag.String("joining", "", "joining date (YYYY-MM-DD)")
		phone   = pflag.String("phone", "", "ten digit phone, optional")
		course  = pflag.String("training", "", "training name")
		start   = pflag.String("start", "", "start date (YYYY-MM-DD)")
		end     = pflag.String("end", "", "end date (YYYY-MM-DD), optional")
		status  = pflag.String("status", "Pending", "training status")
		term    = pflag.String("q", "", "search term")
	)
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	base := storeclient.NewClient(*apiURL)
	var confirmer workflow.Confirmer
	if *yes {
		confirmer = &workflow.AutoConfirmer{Approve: true}
	} else {
		confirmer = newStdinConfirmer()
	}

	employeeFlow := workflow.NewEmployeeFlow(storeclient.NewEmployeeClient(base), confirmer)
	enrollmentFlow := workflow.NewEnrollmentFlow(storeclient.NewTraineeClient(base), confirmer)
	dashboard := storeclient.NewDashboardClient(base)

	ctx := context.Background()
	var err error

	switch args[0] + " " + args[1] {
	case "employees list":
		err = listEmployees(ctx, employeeFlow)
	case "employees search":
		err = searchEmployees(ctx, employeeFlow, *term)
	case "employees add":
		err = submitEmployee(ctx, employeeFlow, dto.EmployeeRequest{
			EmployeeID:  *id,
			Name:        *name,
			Email:       *email,
			Department:  domain.Department(*dept),
			JoiningDate: *joining,
			Phone:       *phone,
		}, false)
	case "employees edit":
		err = submitEmployee(ctx, employeeFlow, dto.EmployeeRequest{
			EmployeeID:  *id,
			Name:        *name,
			Email:       *email,
			Department:  domain.Department(*dept),
			JoiningDate: *joining,
			Phone:       *phone,
		}, true)
	case "employees deactivate":
		err = deactivateEmployee(ctx, employeeFlow, *id)
	case "trainees list":
		err = listTrainees(ctx, enrollmentFlow)
	case "trainees search":
		err = searchTrainees(ctx, enrollmentFlow, *term)
	case "trainees enroll":
		err = submitEnrollment(ctx, enrollmentFlow, dto.TraineeRequest{
			EmployeeID:   *id,
			TrainingName: domain.TrainingCategory(*course),
			StartDate:    *start,
			EndDate:      *end,
			Status:       domain.TraineeStatus(*status),
		})
	case "trainees delete-by-name":
		err = deleteTraineesByName(ctx, enrollmentFlow, *name)
	case "dashboard stats":
		err = printStats(ctx, dashboard)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: trainingctl [flags] <resource> <action>

  employees list|search|add|edit|deactivate
  trainees  list|search|enroll|delete-by-name
  dashboard stats

run "trainingctl --help" for flags`)
}

func listEmployees(ctx context.Context, flow *workflow.EmployeeFlow) error {
	if err := flow.Refresh(ctx); err != nil {
		return err
	}
	printEmployees(flow.Employees())
	return nil
}

// searchEmployees filters the fetched listing locally, the same way the
// dashboard search box behaves.
func searchEmployees(ctx context.Context, flow *workflow.EmployeeFlow, term string) error {
	if err := flow.Refresh(ctx); err != nil {
		return err
	}
	printEmployees(flow.Filter(term))
	return nil
}

func submitEmployee(ctx context.Context, flow *workflow.EmployeeFlow, req dto.EmployeeRequest, editing bool) error {
	if err := flow.Refresh(ctx); err != nil {
		return err
	}
	if editing {
		target, ok := findEmployee(flow.Employees(), req.EmployeeID)
		if !ok {
			return fmt.Errorf("no employee %q in the store", req.EmployeeID)
		}
		flow.BeginEdit(target)
	} else {
		flow.BeginCreate()
		if req.EmployeeID == "" {
			req.EmployeeID = flow.Form().EmployeeID
		}
	}
	flow.SetForm(req)

	outcome, err := flow.Submit(ctx)
	reportOutcome(outcome)
	return err
}

func deactivateEmployee(ctx context.Context, flow *workflow.EmployeeFlow, id string) error {
	if err := flow.Refresh(ctx); err != nil {
		return err
	}
	target, ok := findEmployee(flow.Employees(), id)
	if !ok {
		return fmt.Errorf("no employee %q in the store", id)
	}
	outcome, err := flow.Deactivate(ctx, target)
	reportOutcome(outcome)
	return err
}

func listTrainees(ctx context.Context, flow *workflow.EnrollmentFlow) error {
	if err := flow.Refresh(ctx); err != nil {
		return err
	}
	printTrainees(flow.Trainees())
	return nil
}

func searchTrainees(ctx context.Context, flow *workflow.EnrollmentFlow, term string) error {
	if err := flow.Refresh(ctx); err != nil {
		return err
	}
	printTrainees(flow.Filter(term))
	return nil
}

func submitEnrollment(ctx context.Context, flow *workflow.EnrollmentFlow, req dto.TraineeRequest) error {
	flow.BeginEnroll()
	flow.SetForm(req)
	outcome, err := flow.Submit(ctx)
	reportOutcome(outcome)
	return err
}

func deleteTraineesByName(ctx context.Context, flow *workflow.EnrollmentFlow, name string) error {
	outcome, count, err := flow.DeleteByEmployeeName(ctx, name)
	reportOutcome(outcome)
	if outcome == workflow.OutcomeSucceeded {
		fmt.Printf("removed %d enrollment(s)\n", count)
	}
	return err
}

func printStats(ctx context.Context, client *storeclient.DashboardClient) error {
	stats, err := client.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("trainees: %d  trainings: %d\n", stats.TotalTrainees, stats.TotalTrainings)
	fmt.Printf("pending: %d (%d%%)  ongoing: %d (%d%%)  completed: %d (%d%%)\n",
		stats.PendingTrainings, stats.StatusPercentages[domain.TraineeStatusPending],
		stats.OngoingTrainings, stats.StatusPercentages[domain.TraineeStatusOngoing],
		stats.CompletedTrainings, stats.StatusPercentages[domain.TraineeStatusCompleted])
	for _, category := range domain.TrainingCategories() {
		fmt.Printf("  %-24s %d\n", category, stats.TraineesByTraining[category])
	}
	if len(stats.UpcomingTrainings) > 0 {
		fmt.Println("upcoming:")
		printTrainees(stats.UpcomingTrainings)
	}
	if len(stats.RecentCompletions) > 0 {
		fmt.Println("recent completions:")
		printTrainees(stats.RecentCompletions)
	}
	return nil
}

func printEmployees(list []dto.EmployeeResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tDEPARTMENT\tJOINED\tACTIVE")
	for _, emp := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n",
			emp.EmployeeID, emp.Name, emp.Email, emp.Department, emp.JoiningDate, emp.Active)
	}
	_ = w.Flush()
}

func printTrainees(list []dto.TraineeResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tNAME\tTRAINING\tSTART\tEND\tSTATUS")
	for _, tr := range list {
		end := "-"
		if tr.EndDate != nil {
			end = *tr.EndDate
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tr.ID, tr.EmployeeID, tr.EmployeeName, tr.TrainingName, tr.StartDate, end, tr.Status)
	}
	_ = w.Flush()
}

func findEmployee(list []dto.EmployeeResponse, id string) (dto.EmployeeResponse, bool) {
	for _, emp := range list {
		if emp.EmployeeID == id {
			return emp, true
		}
	}
	return dto.EmployeeResponse{}, false
}

func reportOutcome(outcome workflow.Outcome) {
	switch outcome {
	case workflow.OutcomeDeclined:
		fmt.Println("cancelled")
	case workflow.OutcomeSucceeded:
		fmt.Println("done")
	}
}

// stdinConfirmer asks y/n questions on the terminal.
type stdinConfirmer struct {
	reader *bufio.Reader
}

func newStdinConfirmer() *stdinConfirmer {
	return &stdinConfirmer{reader: bufio.NewReader(os.Stdin)}
}

func (s *stdinConfirmer) Confirm(_ context.Context, prompt workflow.Prompt) (bool, error) {
	fmt.Printf("%s %s [y/N]: ", prompt.Title, prompt.Text)
	line, err := s.reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func (s *stdinConfirmer) Notify(_ context.Context, prompt workflow.Prompt) {
	fmt.Printf("[%s] %s: %s\n", prompt.Kind, prompt.Title, prompt.Text)
}
