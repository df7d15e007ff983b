package main

import (
	"fmt"
	"os"

	"employee_onboarding/internal/cli"
	"employee_onboarding/internal/common"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if stepErr, ok := common.IsStepError(err); ok && stepErr.Kind == common.KindConfig {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
