// Package chain runs ordered fallback strategies and records every attempt.
package chain

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
)

// Class tells the driver what to do after a failed strategy.
type Class uint8

const (
	// Advance moves on to the next strategy.
	Advance Class = iota
	// Fatal stops the chain and surfaces the error.
	Fatal
)

// Result is what a strategy returns instead of raising.
type Result struct {
	Outcome domain.Outcome
	Class   Class
	Err     error
	// Env is the environment identity the strategy produced.
	Env domain.Activation
}

// Succeeded reports a successful strategy that left env in place.
func Succeeded(env domain.Activation) Result {
	return Result{Outcome: domain.OutcomeSucceeded, Env: env}
}

// Skipped reports a strategy with nothing to do.
func Skipped() Result {
	return Result{Outcome: domain.OutcomeSkipped}
}

// Failed reports a failure classified by Classify.
func Failed(err error) Result {
	return Result{Outcome: domain.OutcomeFailed, Class: Classify(err), Err: err}
}

// Unavailable reports a strategy whose input could not be obtained. The chain
// advances.
func Unavailable(err error) Result {
	return Result{Outcome: domain.OutcomeFailed, Class: Advance, Err: err}
}

// Classify maps an error to its chain class. A command that ran and exited
// non-zero advances; timeouts and everything else are fatal.
func Classify(err error) Class {
	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) && !cmdErr.TimedOut {
		return Advance
	}
	return Fatal
}

// Strategy is one way of reaching the chain's goal.
type Strategy struct {
	ID    domain.StrategyID
	Layer domain.Layer
	Run   func(ctx context.Context) Result
}

// Outcome is a finished chain run.
type Outcome struct {
	Winner domain.StrategyID
	Env    domain.Activation
	Report domain.ChainReport
}

// Driver executes strategy lists.
type Driver struct {
	logger ports.Logger
	tracer trace.Tracer
}

// NewDriver creates a Driver.
func NewDriver(logger ports.Logger, tracer trace.Tracer) *Driver {
	return &Driver{logger: logger, tracer: tracer}
}

// Run tries strategies in order and stops at the first success. A fatal
// failure is returned as *domain.StrategyError; exhausting the list returns
// *domain.ChainError wrapping the last failure.
func (d *Driver) Run(ctx context.Context, name string, strategies []Strategy) (Outcome, error) {
	out := Outcome{Report: domain.ChainReport{Chain: name}}

	var last error
	for i, s := range strategies {
		res := d.attempt(ctx, name, s)
		out.Report.Attempts = append(out.Report.Attempts, attemptOf(s, res))

		switch res.Outcome {
		case domain.OutcomeSucceeded:
			out.Winner = s.ID
			out.Env = res.Env
			return out, nil
		case domain.OutcomeSkipped:
			d.logger.Debug(fmt.Sprintf("%s: strategy %s skipped", name, s.ID))
			continue
		}

		failure := &domain.StrategyError{Strategy: s.ID, Err: res.Err}
		d.logger.Debug(fmt.Sprintf("%s: strategy %s failed, the error was:\n\n%v", name, s.ID, res.Err))
		if res.Class == Fatal {
			return out, failure
		}
		last = failure

		if i+1 < len(strategies) {
			d.logger.Info(fmt.Sprintf("Strategy %s did not succeed, falling back to %s...", s.ID, strategies[i+1].ID))
		}
	}

	if last == nil {
		last = &domain.StrategyError{Strategy: "none", Err: errors.New("no strategy was applicable")}
	}
	return out, &domain.ChainError{Chain: name, Attempts: out.Report.Attempts, Err: last}
}

// Step runs a single strategy with no fallback. Any failure is fatal.
func (d *Driver) Step(ctx context.Context, name string, s Strategy) (domain.Attempt, error) {
	res := d.attempt(ctx, name, s)
	a := attemptOf(s, res)
	if res.Outcome == domain.OutcomeFailed {
		return a, &domain.StrategyError{Strategy: s.ID, Err: res.Err}
	}
	return a, nil
}

func (d *Driver) attempt(ctx context.Context, name string, s Strategy) Result {
	ctx, span := d.tracer.Start(ctx, "strategy."+string(s.ID), trace.WithAttributes(
		attribute.String("chain", name),
		attribute.String("strategy", string(s.ID)),
		attribute.String("layer", s.Layer.String()),
	))
	defer span.End()

	res := s.Run(ctx)

	span.SetAttributes(attribute.String("outcome", res.Outcome.String()))
	if res.Outcome == domain.OutcomeFailed {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
	}
	return res
}

func attemptOf(s Strategy, res Result) domain.Attempt {
	a := domain.Attempt{Strategy: s.ID, Layer: s.Layer, Outcome: res.Outcome}
	if res.Err != nil {
		a.Diagnostic = res.Err.Error()
	}
	return a
}
