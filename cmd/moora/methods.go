package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/moora/internal/outwriter"
	"github.com/katalvlaran/moora/moora"
)

var methodDescriptions = map[moora.Method]outwriter.MethodInfo{
	moora.MethodRatio: {
		Order: "higher is better", Weights: true,
		Description: "Weighted sum of normalized benefits minus costs",
	},
	moora.MethodRefPoint: {
		Order: "lower is better", Weights: true,
		Description: "Largest weighted distance to the ideal point",
	},
	moora.MethodFMF: {
		Order:       "higher is better",
		Description: "Log product of benefits over costs",
	},
	moora.MethodMultiMOORA: {
		Order:       "more votes is better",
		Description: "Pairwise dominance vote over Ratio, RefPoint and FMF",
	},
}

// methodInfos lists every method with its description in declaration order.
func methodInfos() []outwriter.MethodInfo {
	out := make([]outwriter.MethodInfo, 0, len(methodDescriptions))
	for _, m := range moora.Methods() {
		info := methodDescriptions[m]
		info.Name = m.String()
		out = append(out, info)
	}
	return out
}

// methodsCmd lists the available ranking methods.
var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the available ranking methods.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return outwriter.WriteMethods(cmd.OutOrStdout(), methodInfos())
	},
}
