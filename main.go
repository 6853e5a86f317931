package main

import (
	"flag"
	"log"
	"strings"

	"TxVisualizer/bootstrap"
)

var (
	scenarioCmd = flag.String("scenario", "", "run one scenario (deadlock, no-deadlock) on the console and exit")
	amountsCmd  = flag.String("amounts", "", "comma separated amount per transfer pair, empty uses DEFAULT_AMOUNT")
)

func main() {
	flag.Parse()
	var amounts []string
	if *amountsCmd != "" {
		amounts = strings.Split(*amountsCmd, ",")
	}
	if _, err := bootstrap.Run(bootstrap.Options{Scenario: *scenarioCmd, Amounts: amounts}); err != nil {
		log.Fatal(err)
	}
}
