package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/theoremus-urban-solutions/trip-analytics/config"
	"github.com/theoremus-urban-solutions/trip-analytics/formatter"
	"github.com/theoremus-urban-solutions/trip-analytics/internal"
	"github.com/theoremus-urban-solutions/trip-analytics/trips"
)

func main() {
	datasetName := flag.String("dataset", "", "dataset name from config.datasets[]")
	input := flag.String("input", "", "dataset file path (overrides config)")
	layoutName := flag.String("layout", "", "record layout: minimal|headered (overrides config)")
	zones := flag.Int("zones", -1, "number of top zones to report (overrides config)")
	slots := flag.Int("slots", -1, "number of top busy slots to report (overrides config)")
	format := flag.String("format", "", "output format: text|json (overrides config)")
	flag.Parse()

	_ = godotenv.Load()
	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ds := config.SelectDataset(*datasetName)
	if *input != "" {
		ds.Path = *input
	}
	if *layoutName != "" {
		ds.Layout = *layoutName
	}
	if ds.Path == "" {
		fmt.Fprintln(os.Stderr, "no dataset: pass -input or configure a dataset")
		flag.Usage()
		os.Exit(2)
	}
	if ds.Layout == "" {
		ds.Layout = trips.LayoutHeadered.Name
	}
	layout, err := trips.LayoutByName(ds.Layout)
	if err != nil {
		log.Fatalf("layout: %v", err)
	}

	kZones := config.Config.Report.TopZones
	if *zones >= 0 {
		kZones = *zones
	}
	kSlots := config.Config.Report.TopSlots
	if *slots >= 0 {
		kSlots = *slots
	}
	outFormat := config.Config.Report.Format
	if *format != "" {
		outFormat = *format
	}

	analyzer := trips.NewAnalyzer(layout)
	if err := analyzer.Ingest(ds.Path); err != nil {
		// best effort: an unreadable dataset still yields an (empty) report
		log.Printf("ingest: %v", err)
	}
	st := analyzer.Stats()
	log.Printf("ingested %s: %d lines, %d records, %d skipped", ds.Path, st.Lines, st.Records, st.Skipped)

	report := formatter.NewReport(ds.Name, analyzer.TopZones(kZones), analyzer.TopBusySlots(kSlots))
	buf := formatter.NewReportBuilder().Build(report, outFormat)
	fmt.Println(string(buf))
}
