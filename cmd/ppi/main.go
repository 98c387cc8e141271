package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lucasfein/ppi/pkg/community"
	"github.com/lucasfein/ppi/pkg/config"
	"github.com/lucasfein/ppi/pkg/correction"
	"github.com/lucasfein/ppi/pkg/enrichment"
	"github.com/lucasfein/ppi/pkg/logging"
	"github.com/lucasfein/ppi/pkg/measurement"
	"github.com/lucasfein/ppi/pkg/metrics"
	"github.com/lucasfein/ppi/pkg/network"
	"github.com/lucasfein/ppi/pkg/parallel"
)

func main() {
	configPath := flag.String("config", "", "workflow configuration file")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: ppi -config workflow.yaml")
		os.Exit(2)
	}

	if err := run(*configPath); err != nil {
		logging.ErrorLog("workflow failed", logging.Error(err))
		os.Exit(1)
	}
}

func run(configPath string) error {
	start := time.Now()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" {
		logging.DefaultLogger().SetLevel(logging.ParseLevel(cfg.LogLevel))
	}

	logger := logging.With(logging.Component("workflow"))
	registry := metrics.DefaultRegistry()

	net, err := assembleNetwork(cfg, logger, registry)
	if err != nil {
		return err
	}

	if err := attachMeasurements(cfg, net, logger, registry); err != nil {
		return err
	}

	combination, err := network.ConfidenceScoreCombination(cfg.EdgeWeight)
	if err != nil {
		return err
	}
	net.SetEdgeWeights(combination)

	communities, err := detectCommunities(cfg, net, logger, registry)
	if err != nil {
		return err
	}

	if cfg.Enrichment.Annotation != "" {
		if err := analyzeCommunities(cfg, net, communities, logger, registry); err != nil {
			return err
		}
	}

	registry.UpdateSystemMetrics(start)
	logger.Info("workflow complete", logging.Latency(time.Since(start)))
	return nil
}

func assembleNetwork(cfg *config.Config, logger logging.Logger, registry *metrics.Registry) (*network.Network, error) {
	net := network.New()

	for _, nc := range cfg.Networks {
		stream, err := openEvidence(nc.Path, nc.Source, nc.Threshold)
		if err != nil {
			return nil, err
		}

		result, err := net.MergeEvidence(stream)
		stream.Close()
		if err != nil {
			return nil, err
		}

		for _, accepted := range result.Accepted {
			registry.RecordEvidence(accepted.Source, "accepted", accepted.Score)
		}
		for _, rejected := range result.Rejected {
			registry.RecordEvidence(rejected.Evidence.Source, "rejected", 0)
			logger.Debug("evidence rejected",
				logging.Source(rejected.Evidence.Source),
				logging.Error(rejected.Err))
		}

		logger.Info("merged evidence",
			logging.Source(nc.Source),
			logging.Path(nc.Path),
			logging.Count(len(result.Accepted)))
	}

	registry.UpdateNetworkSize(net.ProteinCount(), net.InteractionCount())
	return net, nil
}

func attachMeasurements(cfg *config.Config, net *network.Network, logger logging.Logger, registry *metrics.Registry) error {
	for _, mf := range cfg.Measurements {
		aggregator, err := buildAggregator(mf)
		if err != nil {
			return err
		}

		raw, err := readMeasurements(mf.Path)
		if err != nil {
			return err
		}

		attached, skipped := 0, 0
		for accession, sites := range raw {
			kept, err := aggregator.Aggregate(sites)
			if err != nil {
				skipped += len(sites)
				continue
			}
			if err := net.AddMeasurementSeries(accession, mf.Time, mf.Modification, kept); err != nil {
				return err
			}
			attached += len(kept)
			skipped += len(sites) - len(kept)
		}

		registry.RecordSeries(attached, skipped)
		logger.Info("attached measurement series",
			logging.Path(mf.Path),
			logging.Time(mf.Time),
			logging.Modification(mf.Modification),
			logging.Count(attached))
	}
	return nil
}

func buildAggregator(mf config.MeasurementFile) (*measurement.Aggregator, error) {
	replicate, err := measurement.ReplicateCombination(mf.ReplicateAverage)
	if err != nil {
		return nil, err
	}
	convert, err := measurement.LogConversion(mf.Conversion)
	if err != nil {
		return nil, err
	}
	prioritize, err := measurement.SitePrioritization(mf.Prioritization)
	if err != nil {
		return nil, err
	}

	return &measurement.Aggregator{
		MinReplicates: mf.MinReplicates,
		SiteCap:       mf.Sites,
		Replicates:    replicate,
		Convert:       convert,
		Prioritize:    prioritize,
	}, nil
}

func detectCommunities(cfg *config.Config, net *network.Network, logger logging.Logger, registry *metrics.Registry) ([]*network.Network, error) {
	algorithm, err := community.ParseAlgorithm(cfg.Community.Algorithm)
	if err != nil {
		return nil, err
	}
	statistic, err := community.ParseSizeStatistic(cfg.Community.SizeStatistic)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	communities, err := community.Detect(net, community.Options{
		Algorithm:       algorithm,
		Resolution:      cfg.Community.Resolution,
		MaxSize:         cfg.Community.CommunitySize,
		SizeStatistic:   statistic,
		MinSize:         cfg.Community.MinSize,
		MaxRepartitions: cfg.Community.MaxRepartitions,
	})
	if err != nil {
		return nil, err
	}

	registry.RecordPartition(string(algorithm), len(communities), time.Since(started))
	logger.Info("detected communities",
		logging.String("algorithm", string(algorithm)),
		logging.Count(len(communities)))
	return communities, nil
}

func analyzeCommunities(cfg *config.Config, net *network.Network, communities []*network.Network, logger logging.Logger, registry *metrics.Registry) error {
	annotation, err := readAnnotation(cfg.Enrichment.Annotation)
	if err != nil {
		return err
	}

	test, err := enrichment.ParseTest(cfg.Enrichment.Test)
	if err != nil {
		return err
	}
	direction := enrichment.ParseDirection(cfg.Enrichment.Increase)

	procedure, err := correction.Parse[enrichment.Key](cfg.Enrichment.Correction)
	if err != nil {
		return err
	}

	started := time.Now()
	var raw map[enrichment.Key]float64
	var skipped []enrichment.PairError

	if test == enrichment.Hypergeometric {
		queries, err := parallel.Map(cfg.Workers, communities, func(c *network.Network) enrichment.Set {
			return enrichment.NewSet(c.Proteins())
		})
		if err != nil {
			return err
		}
		reference := []enrichment.Set{enrichment.NewSet(net.Proteins())}
		raw, skipped = enrichment.TestSets(queries, reference, annotation, direction)
	} else {
		queries, err := measuredQueries(cfg, communities)
		if err != nil {
			return err
		}
		absolute := cfg.Enrichment.Absolute || test == enrichment.AbsoluteRank
		raw, skipped = enrichment.TestMeasurements(queries, annotation, direction, absolute)
	}
	registry.RecordEnrichment(string(test), len(raw), len(skipped), time.Since(started))

	for _, pair := range skipped {
		logger.Debug("enrichment test skipped",
			logging.Community(pair.Key.Query),
			logging.TermID(pair.Key.Term.ID),
			logging.Error(pair.Err))
	}

	adjusted, err := procedure(raw)
	if err != nil {
		return err
	}
	registry.RecordCorrection(cfg.Enrichment.Correction)

	for key, p := range adjusted {
		if p <= 0.05 {
			logger.Info("enriched term",
				logging.Community(key.Query),
				logging.TermID(key.Term.ID),
				logging.String("name", key.Term.Name),
				logging.Float64("adjusted_p", p))
		}
	}
	return nil
}

// measuredQueries maps each community's proteins to their representative
// measurement at the first configured timepoint and modification.
func measuredQueries(cfg *config.Config, communities []*network.Network) ([]map[string]float64, error) {
	if len(cfg.Measurements) == 0 {
		return nil, fmt.Errorf("rank-based enrichment needs at least one measurement file")
	}
	mf := cfg.Measurements[0]

	site, err := measurement.SiteCombination(mf.SiteCombination)
	if err != nil {
		return nil, err
	}
	replicate, err := measurement.ReplicateCombination(mf.ReplicateAverage)
	if err != nil {
		return nil, err
	}

	queries := make([]map[string]float64, len(communities))
	for i, c := range communities {
		values, err := c.Measurements(mf.Time, mf.Modification, site, replicate)
		if err != nil {
			return nil, err
		}
		queries[i] = values
	}
	return queries, nil
}
