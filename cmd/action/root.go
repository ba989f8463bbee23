package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pagerduty-event-action/internal/adapter/actions"
	"pagerduty-event-action/internal/config"
	"pagerduty-event-action/internal/di"
	"pagerduty-event-action/internal/usecase"
)

var inputNames = []string{
	usecase.InputIntegrationKey,
	usecase.InputDedupKey,
	usecase.InputEventAction,
	usecase.InputSummary,
	usecase.InputSource,
	usecase.InputSeverity,
	usecase.InputClient,
	usecase.InputClientURL,
}

// newRootCmd returns the Cobra entrypoint. Flags override the INPUT_*
// variables the runner sets, which is handy outside of a workflow.
func newRootCmd(env config.Lookup, exitCode *int) *cobra.Command {
	values := make(map[string]*string, len(inputNames))
	root := &cobra.Command{
		Use:   "pagerduty-event",
		Short: "Send a PagerDuty Events API v2 event from a CI step",
		Long: "pagerduty-event builds an Events API v2 payload from the step inputs and the GitHub " +
			"workflow context, then posts it once to PagerDuty.",
		Example: "  INPUT_INTEGRATION-KEY=... pagerduty-event\n" +
			"  pagerduty-event --integration-key $KEY --event-action trigger --summary 'deploy failed' --severity critical",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := make(map[string]string)
			for _, name := range inputNames {
				if cmd.Flags().Changed(name) {
					overrides[actions.InputEnvKey(name)] = *values[name]
				}
			}

			application, err := di.InitializeApp(withOverrides(env, overrides), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			*exitCode = application.Run(ctx)
			return nil
		},
	}
	for _, name := range inputNames {
		values[name] = root.Flags().String(name, "", fmt.Sprintf("Value of the %q input", name))
	}
	return root
}

func withOverrides(env config.Lookup, overrides map[string]string) config.Lookup {
	return func(key string) (string, bool) {
		if val, ok := overrides[key]; ok {
			return val, true
		}
		return env(key)
	}
}

func execute(args []string, env config.Lookup, stdout io.Writer) int {
	exitCode := 0
	root := newRootCmd(env, &exitCode)
	if args == nil {
		// Cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stdout)
	if err := root.ExecuteContext(context.Background()); err != nil {
		actions.NewAction(actions.LookupFunc(env), stdout).Errorf("%s", err.Error())
		return 1
	}
	return exitCode
}
