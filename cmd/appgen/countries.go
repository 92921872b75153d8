package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-customizer/internal/rules"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List supported target countries and their rules",
	RunE:  runCountries,
}

var countriesDetailed bool

func init() {
	countriesCmd.Flags().BoolVarP(&countriesDetailed, "detailed", "d", false, "Show tone and formatting details per country")

	rootCmd.AddCommand(countriesCmd)
}

func runCountries(_ *cobra.Command, _ []string) error {
	for _, name := range rules.SupportedCountries() {
		if !countriesDetailed {
			fmt.Fprintln(os.Stdout, name)
			continue
		}

		rs, _ := rules.ForCountry(name)
		fmt.Fprintf(os.Stdout, "%s\n", rs.Name)
		fmt.Fprintf(os.Stdout, "  directness: %s, formality: %s\n", rs.Tone.Directness, rs.Tone.Formality)
		fmt.Fprintf(os.Stdout, "  values:     %s\n", strings.Join(rs.Tone.KeyValues, ", "))
		fmt.Fprintf(os.Stdout, "  avoid:      %s\n", strings.Join(rs.Tone.Avoid, ", "))
		if rs.ResumeFormat.MaxPages > 0 {
			fmt.Fprintf(os.Stdout, "  resume:     max %d pages, photo: %t\n",
				rs.ResumeFormat.MaxPages, rs.ResumeFormat.IncludePhoto)
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
