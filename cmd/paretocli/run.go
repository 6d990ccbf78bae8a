package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fairdiv/paretoflow/exchange"
)

// Market is the input document: one valuation matrix and one
// allocation matrix, both players × items.
type Market struct {
	Valuations  [][]float64 `json:"valuations"`
	Allocations [][]float64 `json:"allocations"`
}

// Result is the improve output: the final allocation plus how it was
// reached.
type Result struct {
	Allocations [][]float64 `json:"allocations"`
	Steps       int         `json:"steps"`
	Efficient   bool        `json:"efficient"`
}

func loadMarket(path string) (*Market, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read market file: %w", err)
	}

	var m Market
	if err = json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse market file: %w", err)
	}

	return &m, nil
}

func doCheck(inFile string) error {
	m, err := loadMarket(inFile)
	if err != nil {
		return err
	}

	ok, err := exchange.IsParetoEfficient(m.Valuations, m.Allocations)
	if err != nil {
		return fmt.Errorf("efficiency check failed: %w", err)
	}

	if ok {
		fmt.Println("allocation is Pareto efficient")
	} else {
		fmt.Println("allocation is NOT Pareto efficient: a profitable trade cycle exists")
	}

	return nil
}

func doImprove(inFile, outFile string, eps float64, maxSteps int) error {
	m, err := loadMarket(inFile)
	if err != nil {
		return err
	}

	res := Result{Allocations: m.Allocations}
	for res.Steps < maxSteps {
		done, err := exchange.CheckAndImprove(m.Valuations, m.Allocations,
			exchange.WithEpsilon(eps))
		if err != nil {
			return fmt.Errorf("improvement step %d failed: %w", res.Steps+1, err)
		}
		if done {
			res.Efficient = true

			break
		}
		res.Steps++
	}

	out, err := json.MarshalIndent(&res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	out = append(out, '\n')

	if outFile == "" {
		_, err = os.Stdout.Write(out)

		return err
	}
	if err = os.WriteFile(outFile, out, 0o644); err != nil {
		return fmt.Errorf("write result file: %w", err)
	}
	fmt.Printf("wrote %s after %d step(s); efficient=%v\n", outFile, res.Steps, res.Efficient)

	return nil
}
