package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portfolio-cli",
		Short: "GoPortfolio CLI tool",
		Long:  `A command line interface for interacting with the GoPortfolio API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoPortfolio API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Transaction commands
	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "Ledger operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all transactions",
		Run: func(cmd *cobra.Command, args []string) {
			listTransactions()
		},
	}

	var addDate, addTicker, addQuantity, addUnitPrice, addFees string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			addTransaction(addDate, addTicker, addQuantity, addUnitPrice, addFees)
		},
	}
	addCmd.Flags().StringVar(&addDate, "date", "", "Transaction date (yyyy-MM-dd)")
	addCmd.Flags().StringVar(&addTicker, "ticker", "", "Ticker symbol")
	addCmd.Flags().StringVar(&addQuantity, "quantity", "", "Quantity")
	addCmd.Flags().StringVar(&addUnitPrice, "unit-price", "", "Unit price")
	addCmd.Flags().StringVar(&addFees, "fees", "", "Fees")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			deleteTransaction(args[0])
		},
	}

	transactionsCmd.AddCommand(listCmd, addCmd, deleteCmd)
	rootCmd.AddCommand(transactionsCmd)

	// Dashboard command
	var dashMode, dashTickers, dashTimerange string
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the valuation dashboard",
		Run: func(cmd *cobra.Command, args []string) {
			showDashboard(dashMode, dashTickers, dashTimerange)
		},
	}
	dashboardCmd.Flags().StringVar(&dashMode, "mode", "profit", "Chart mode: value, profit, profit-percentage")
	dashboardCmd.Flags().StringVar(&dashTickers, "tickers", "", "Comma separated ticker filter")
	dashboardCmd.Flags().StringVar(&dashTimerange, "timerange", "ALL", "Timerange: 1W, 1M, 3M, YTD, ALL")
	rootCmd.AddCommand(dashboardCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func listTransactions() {
	body := getJSON("/api/v1/transactions")

	var result struct {
		Transactions []struct {
			ID        string `json:"id"`
			Date      string `json:"date"`
			Ticker    string `json:"ticker"`
			Quantity  string `json:"quantity"`
			UnitPrice string `json:"unit_price"`
			TotalCost string `json:"total_cost"`
		} `json:"transactions"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, t := range result.Transactions {
		fmt.Printf("%s  %s  %-8s qty=%s @ %s total=%s\n",
			t.ID, t.Date, t.Ticker, t.Quantity, t.UnitPrice, t.TotalCost)
	}
	fmt.Printf("Total: %d\n", result.Total)
}

func addTransaction(date, ticker, quantity, unitPrice, fees string) {
	payload, _ := json.Marshal(map[string]string{
		"date":       date,
		"ticker":     ticker,
		"quantity":   quantity,
		"unit_price": unitPrice,
		"fees":       fees,
	})

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/transactions", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Add FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Printf("Recorded: %s\n", string(body))
}

func deleteTransaction(id string) {
	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequest(http.MethodDelete, baseURL+"/api/v1/transactions/"+id, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("Delete FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Println("Deleted")
}

func showDashboard(mode, tickers, timerange string) {
	body := getJSON(fmt.Sprintf("/api/v1/dashboard?mode=%s&tickers=%s&timerange=%s", mode, tickers, timerange))

	var result struct {
		Mode   string `json:"mode"`
		Series []struct {
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"series"`
		PeriodDelta *string `json:"period_delta"`
		Holdings    []struct {
			Ticker string `json:"ticker"`
			Worth  string `json:"worth"`
			Profit string `json:"profit"`
		} `json:"holdings"`
		Errors []struct {
			Ticker  string `json:"ticker"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mode: %s\n", result.Mode)
	for _, p := range result.Series {
		fmt.Printf("%s  %s\n", p.Label, p.Value)
	}
	if result.PeriodDelta != nil {
		fmt.Printf("Period delta: %s\n", *result.PeriodDelta)
	}
	for _, h := range result.Holdings {
		fmt.Printf("%-8s worth=%s profit=%s\n", h.Ticker, h.Worth, h.Profit)
	}
	for _, e := range result.Errors {
		fmt.Printf("WARN %s: %s\n", e.Ticker, e.Message)
	}
}

func getJSON(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}
