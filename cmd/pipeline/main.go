package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/subosito/gotenv"

	"github.com/tourline/merch-forecast/internal/config"
	"github.com/tourline/merch-forecast/internal/domain/genre"
	"github.com/tourline/merch-forecast/internal/domain/price"
	"github.com/tourline/merch-forecast/internal/domain/records"
	"github.com/tourline/merch-forecast/internal/domain/venue"
	"github.com/tourline/merch-forecast/internal/infra/logger"
	"github.com/tourline/merch-forecast/internal/pipeline"
	"github.com/tourline/merch-forecast/internal/predict"
)

func main() {
	configPath := flag.String("config", "config/example.yaml", "path to config file")
	band := flag.String("band", "", "band name (default: derived from the inventory filename)")
	runPredict := flag.Bool("predict", false, "send the enriched dataset to the prediction service")
	saveXLSX := flag.Bool("xlsx", false, "also save predictions as an Excel workbook")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pipeline [flags] <inventory-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	inventoryPath := flag.Arg(0)

	_ = gotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.App.Env)

	if err := run(cfg, log, inventoryPath, *band, *runPredict, *saveXLSX); err != nil {
		log.Error("pipeline failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger, inventoryPath, band string, runPredict, saveXLSX bool) error {
	genres, err := genre.Load(cfg.Data.GenreMap)
	if err != nil {
		return err
	}
	tours, err := venue.LoadLedger(cfg.Data.TourLedger)
	if err != nil {
		return err
	}
	prices, err := price.LoadLedger(cfg.Data.PriceLedger)
	if err != nil {
		return err
	}

	if band == "" {
		band = pipeline.BandFromFilename(inventoryPath)
		log.Info("band derived from filename", "band", band)
	}

	p := pipeline.New(log, genres, tours, prices)
	recs, err := p.ProcessFile(inventoryPath, band)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(inventoryPath), filepath.Ext(inventoryPath))
	enrichedPath := filepath.Join(cfg.Output.Dir, base+"_for_upcoming_shows.csv")
	if err := writeEnriched(enrichedPath, recs); err != nil {
		return err
	}
	log.Info("enriched dataset written", "path", enrichedPath, "rows", len(recs))

	if !runPredict {
		return nil
	}

	client := predict.NewClient(cfg.Predict.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := client.Health(ctx); err != nil {
		return err
	}
	preds, err := client.Predict(ctx, recs)
	if err != nil {
		return err
	}

	stamp := time.Now().Format("01_02_2006-03_04_05_PM")
	predPath := filepath.Join(cfg.Output.Dir, "predicted_sales_by_size_all_products_"+stamp+".csv")
	if err := writePredictions(predPath, preds); err != nil {
		return err
	}
	log.Info("predictions written", "path", predPath, "rows", len(preds))

	if saveXLSX {
		xlsxPath := strings.TrimSuffix(predPath, ".csv") + ".xlsx"
		if err := records.WritePredictionsWorkbook(xlsxPath, preds); err != nil {
			return err
		}
		log.Info("prediction workbook written", "path", xlsxPath)
	}
	return nil
}

func writeEnriched(path string, recs []records.OutputRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return records.WriteEnrichedCSV(f, recs)
}

func writePredictions(path string, recs []records.PredictionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return records.WritePredictionsCSV(f, recs)
}
