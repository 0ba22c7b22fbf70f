package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vdcprotocol/vdc-backend/internal/metrics"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/attest"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/physics"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/repository/ledgerfile"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/service/treasury"
	"github.com/vdcprotocol/vdc-backend/internal/vdc/txbuilder"
)

var config struct {
	LedgerPath string `long:"ledger" env:"VDC_LEDGER_PATH" default:"vdc_chain.json" description:"ledger file path"`
	ProofDir   string `long:"proof-dir" env:"VDC_PROOF_DIR" default:"vdc_proofs" description:"proof bundle directory"`
}

var logger *zap.Logger

type app struct {
	ledger *ledgerfile.Repository
	mint   *treasury.MintOrchestrator
	redeem *treasury.RedeemOrchestrator
}

func newApp(ctx context.Context) (*app, error) {
	ledger, err := ledgerfile.New(config.LedgerPath, metrics.NewLedgerRepository(), logger)
	if err != nil {
		return nil, err
	}
	if err := ledger.Initialize(ctx); err != nil {
		return nil, err
	}

	builder := txbuilder.New(nil)
	treasuryMetrics := metrics.NewTreasury()

	mint, err := treasury.NewMintOrchestrator(
		ledger,
		attest.NewOTS(logger),
		attest.NewStore(config.ProofDir, logger),
		builder,
		treasuryMetrics,
		logger,
	)
	if err != nil {
		return nil, err
	}
	redeem, err := treasury.NewRedeemOrchestrator(ledger, builder, treasuryMetrics, logger)
	if err != nil {
		return nil, err
	}

	return &app{ledger: ledger, mint: mint, redeem: redeem}, nil
}

type mintCommand struct {
	Kcal      float64 `long:"kcal" default:"600" description:"active kcal burned"`
	Distance  float64 `long:"distance" default:"5000" description:"meters traveled"`
	Elevation float64 `long:"elevation" default:"60" description:"meters climbed"`
	Mass      float64 `long:"mass" default:"75" description:"user mass in kg"`
	Gravity   float64 `long:"gravity" default:"9.81" description:"gravity acceleration in m/s^2"`
	Args      struct {
		Wallet string `positional-arg-name:"wallet" required:"yes" description:"destination wallet address"`
	} `positional-args:"yes"`
}

func (c *mintCommand) Execute([]string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	receipt, err := a.mint.Mint(ctx, treasury.MintRequest{
		Wallet: c.Args.Wallet,
		Sample: physics.Sample{
			ActiveKcal: c.Kcal,
			DistanceM:  c.Distance,
			ElevationM: c.Elevation,
			MassKg:     c.Mass,
			Gravity:    c.Gravity,
		},
	})
	switch {
	case errors.Is(err, treasury.ErrValidationRejected),
		errors.Is(err, treasury.ErrAttestationFailed):
		fmt.Printf("MINT REJECTED: %v\n", err)
		return nil
	case errors.Is(err, ledgerfile.ErrCorrupt):
		return err
	case err != nil:
		fmt.Printf("CRITICAL FAILURE during mint: %v\n", err)
		return nil
	}

	rule := strings.Repeat("=", 52)
	fmt.Println("\nVDC MINTED: proof-of-motion accepted")
	fmt.Println(rule)
	fmt.Printf("Wallet        : %s\n", c.Args.Wallet)
	fmt.Printf("Mass (kg)     : %.1f (gravity %.2f m/s^2)\n", c.Mass, c.Gravity)
	fmt.Printf("Work (kJ)     : %.1f\n", receipt.Verdict.WorkJoules/1000)
	fmt.Printf("VDC minted    : %s\n", receipt.Amount.StringFixed(8))
	fmt.Println(strings.Repeat("-", 52))
	fmt.Printf("New balance   : %s VDC\n", receipt.Balance.StringFixed(8))
	fmt.Printf("Total supply  : %s VDC\n", receipt.Supply.StringFixed(2))
	fmt.Printf("Block         : #%d (%.10s...)\n", receipt.Block.Index, receipt.Block.Hash)
	fmt.Printf("Attestation   : %s\n", receipt.AttestationID)
	fmt.Printf("Proof bundle  : %s\n", receipt.ProofRef)
	fmt.Println(rule)
	return nil
}

type redeemCommand struct {
	Args struct {
		Wallet string `positional-arg-name:"wallet" required:"yes" description:"source wallet address"`
		Amount string `positional-arg-name:"amount" required:"yes" description:"amount of VDC to burn"`
	} `positional-args:"yes"`
}

func (c *redeemCommand) Execute([]string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(c.Args.Amount)
	if err != nil {
		fmt.Printf("REDEEM REJECTED: invalid amount %q\n", c.Args.Amount)
		return nil
	}

	receipt, err := a.redeem.Redeem(ctx, c.Args.Wallet, amount)
	switch {
	case errors.Is(err, treasury.ErrInsufficientBalance),
		errors.Is(err, treasury.ErrInvalidAmount):
		fmt.Printf("REDEEM REJECTED: %v\n", err)
		return nil
	case errors.Is(err, ledgerfile.ErrCorrupt):
		return err
	case err != nil:
		fmt.Printf("CRITICAL FAILURE during redeem: %v\n", err)
		return nil
	}

	rule := strings.Repeat("=", 52)
	fmt.Println("\nVDC REDEEMED: commodity basket shipping")
	fmt.Println(rule)
	fmt.Printf("Wallet         : %s\n", c.Args.Wallet)
	fmt.Printf("VDC burned     : %s\n", receipt.Amount.StringFixed(8))
	fmt.Printf("New balance    : %s VDC\n", receipt.Balance.StringFixed(8))
	fmt.Println(strings.Repeat("-", 52))
	fmt.Printf("Gold shipped   : %s g\n", receipt.Basket.GoldGrams.StringFixed(8))
	fmt.Printf("Silk shipped   : %s g\n", receipt.Basket.SilkGrams.StringFixed(8))
	fmt.Printf("Tencel shipped : %s g\n", receipt.Basket.TencelGrams.StringFixed(8))
	fmt.Printf("Shipping ID    : %s\n", receipt.ShippingRef)
	fmt.Printf("Block          : #%d\n", receipt.Block.Index)
	fmt.Println(rule)
	return nil
}

type balanceCommand struct {
	Args struct {
		Wallet string `positional-arg-name:"wallet" required:"yes" description:"wallet address to check"`
	} `positional-args:"yes"`
}

func (c *balanceCommand) Execute([]string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	balance, err := a.ledger.BalanceOf(ctx, c.Args.Wallet)
	if err != nil {
		return err
	}
	supply, err := a.ledger.CurrentSupply(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nWALLET STATUS: %s\n", c.Args.Wallet)
	fmt.Println(strings.Repeat("-", 52))
	fmt.Printf("Balance      : %s VDC\n", balance.StringFixed(8))
	fmt.Printf("Total supply : %s VDC\n", supply.StringFixed(2))
	fmt.Println(strings.Repeat("-", 52))
	return nil
}

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	parser := flags.NewParser(&config, flags.Default)
	mustAddCommand(parser, "mint", "Mint VDC from verified proof-of-motion", &mintCommand{})
	mustAddCommand(parser, "redeem", "Burn VDC to redeem the commodity basket", &redeemCommand{})
	mustAddCommand(parser, "balance", "Check wallet balance and total supply", &balanceCommand{})

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		// Rejections print a report and exit zero; only an unreadable
		// ledger is a process failure.
		if errors.Is(err, ledgerfile.ErrCorrupt) {
			logger.Fatal("ledger corrupted", zap.Error(err))
		}
		os.Exit(1)
	}
}

func mustAddCommand(parser *flags.Parser, name, description string, cmd interface{}) {
	if _, err := parser.AddCommand(name, description, "", cmd); err != nil {
		logger.Fatal("register command", zap.String("command", name), zap.Error(err))
	}
}
