package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sivchari/calc/internal/convert"
	"github.com/sivchari/calc/internal/formula"
	"github.com/sivchari/calc/internal/report"
	"github.com/spf13/cobra"
)

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Compute body mass index from weight (kg) and height (cm)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		weight, _ := cmd.Flags().GetFloat64("weight")
		height, _ := cmd.Flags().GetFloat64("height")

		res, err := formula.BMI(weight, height)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "BMI: %s (%s)\n", report.FormatRounded(res.Value, 1), res.Category)

		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <category> <value> <from> <to>",
	Short: "Convert a value between units",
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseValue(args[1])
		if err != nil {
			return err
		}

		got, err := convert.New().Convert(args[0], value, args[2], args[3])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", args[1], args[2], report.FormatRounded(got, 6), args[3])

		return nil
	},
}

var physicsCmd = &cobra.Command{
	Use:   "physics <velocity|displacement|force|kinetic> <value> <value>",
	Short: "Evaluate a mechanics formula",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := formula.LookupPhysics(args[0])
		if err != nil {
			return err
		}

		values := make([]float64, 0, len(args)-1)
		for _, arg := range args[1:] {
			v, err := parseValue(arg)
			if err != nil {
				return err
			}

			values = append(values, v)
		}

		got, err := p.Eval(values...)
		if err != nil {
			return fmt.Errorf("failed to compute %s: %w", p.Name, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, p.Equation)
		fmt.Fprintf(out, "The %s is: %s %s\n", p.Name, report.FormatRounded(got, 4), p.Unit)

		return nil
	},
}

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Investment, loan and salary calculators",
}

var investmentCmd = &cobra.Command{
	Use:   "investment",
	Short: "Project compound growth with monthly contributions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		principal, _ := cmd.Flags().GetFloat64("principal")
		monthly, _ := cmd.Flags().GetFloat64("monthly")
		rate, _ := cmd.Flags().GetFloat64("rate")
		years, _ := cmd.Flags().GetInt("years")

		inv, err := formula.GrowInvestment(principal, monthly, rate, years)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total: %s\nInvested: %s\nInterest: %s\n",
			report.FormatRounded(inv.Total, 0), report.FormatRounded(inv.Invested, 0), report.FormatRounded(inv.Interest, 0))

		for _, p := range inv.Yearly {
			fmt.Fprintf(out, "Year %d: balance %s, invested %s\n",
				p.Year, report.FormatRounded(p.Balance, 0), report.FormatRounded(p.Invested, 0))
		}

		return nil
	},
}

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Compute the monthly payment of an amortized loan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		amount, _ := cmd.Flags().GetFloat64("amount")
		rate, _ := cmd.Flags().GetFloat64("rate")
		years, _ := cmd.Flags().GetInt("years")

		loan, err := formula.AmortizeLoan(amount, rate, years)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Monthly payment: %s\nTotal payment: %s\nTotal interest: %s\n",
			report.FormatRounded(loan.Monthly, 0), report.FormatRounded(loan.TotalPayment, 0), report.FormatRounded(loan.TotalInterest, 0))

		for _, p := range loan.Yearly {
			fmt.Fprintf(out, "Year %d: balance %s\n", p.Year, report.FormatRounded(p.Balance, 0))
		}

		return nil
	},
}

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Break an hourly wage down by period",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		hourly, _ := cmd.Flags().GetFloat64("hourly")
		hours, _ := cmd.Flags().GetFloat64("hours")
		weeks, _ := cmd.Flags().GetFloat64("weeks")

		s := formula.SalaryFromHourly(hourly, hours, weeks)
		fmt.Fprintf(cmd.OutOrStdout(), "Day: %s\nWeek: %s\nMonth: %s\nYear: %s\n",
			report.FormatRounded(s.Daily, 0), report.FormatRounded(s.Weekly, 0),
			report.FormatRounded(s.Monthly, 0), report.FormatRounded(s.Annual, 0))

		return nil
	},
}

func parseValue(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", arg)
	}

	return v, nil
}

func convertHelp() string {
	var b strings.Builder

	b.WriteString("Convert a value between units of one category.\n")
	b.WriteString("Currency rates are fixed approximations relative to USD.\n\nCategories:\n")

	for _, cat := range convert.Categories() {
		fmt.Fprintf(&b, "  %-12s %s\n", cat.Name, strings.Join(cat.Units, ", "))
	}

	return b.String()
}

func physicsHelp() string {
	var b strings.Builder

	b.WriteString("Evaluate a mechanics formula. Values follow the order shown.\n\nFormulas:\n")

	for _, p := range formula.PhysicsFormulas() {
		labels := make([]string, 0, len(p.Fields))
		for _, f := range p.Fields {
			labels = append(labels, f.Label)
		}

		fmt.Fprintf(&b, "  %-13s %s  (%s)\n", p.Key, p.Equation, strings.Join(labels, ", "))
	}

	return b.String()
}

func init() {
	convertCmd.Long = convertHelp()
	physicsCmd.Long = physicsHelp()

	rootCmd.AddCommand(bmiCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(physicsCmd)
	rootCmd.AddCommand(financeCmd)

	financeCmd.AddCommand(investmentCmd)
	financeCmd.AddCommand(loanCmd)
	financeCmd.AddCommand(salaryCmd)

	bmiCmd.Flags().Float64("weight", 0, "weight in kilograms")
	bmiCmd.Flags().Float64("height", 0, "height in centimeters")
	_ = bmiCmd.MarkFlagRequired("weight")
	_ = bmiCmd.MarkFlagRequired("height")

	investmentCmd.Flags().Float64("principal", 1000, "initial investment")
	investmentCmd.Flags().Float64("monthly", 200, "monthly contribution")
	investmentCmd.Flags().Float64("rate", 7, "annual interest rate in percent")
	investmentCmd.Flags().Int("years", 10, "investment period in years")

	loanCmd.Flags().Float64("amount", 200000, "amount borrowed")
	loanCmd.Flags().Float64("rate", 5.5, "annual interest rate in percent")
	loanCmd.Flags().Int("years", 30, "loan term in years")

	salaryCmd.Flags().Float64("hourly", 25, "hourly rate")
	salaryCmd.Flags().Float64("hours", 40, "hours per week")
	salaryCmd.Flags().Float64("weeks", 52, "weeks worked per year")
}
