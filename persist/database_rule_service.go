// MIT License
//
// Copyright (c) 2025-2026 kid0510z
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package persist

import (
	"context"
	"fmt"

	"github.com/kid0510z/shardingsphere/internal/validation"
	"github.com/kid0510z/shardingsphere/log"
	"github.com/kid0510z/shardingsphere/nodepath"
	"github.com/kid0510z/shardingsphere/nodepath/metadata"
	"github.com/kid0510z/shardingsphere/nodepath/rule"
	"github.com/kid0510z/shardingsphere/repository"
	"github.com/kid0510z/shardingsphere/tuple"
)

// DatabaseRuleService is the administrative write path for per-database rule
// configurations: it flattens configurations through the tuple swapper,
// writes each tuple under its generated version path, and reports the
// resulting version stamps.
type DatabaseRuleService struct {
	repo     repository.Repository
	swapper  tuple.Swapper
	registry *rule.Registry
	versions *MetaDataVersionService
	tuples   *RepositoryTupleService
	logger   log.Logger
}

// Option configures the service.
type Option func(*DatabaseRuleService)

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(s *DatabaseRuleService) { s.logger = logger }
}

// NewDatabaseRuleService creates a rule persist service. The registry must
// already hold a descriptor for every configuration variant the service will
// see.
func NewDatabaseRuleService(repo repository.Repository, swapper tuple.Swapper, registry *rule.Registry, opts ...Option) *DatabaseRuleService {
	service := &DatabaseRuleService{
		repo:     repo,
		swapper:  swapper,
		registry: registry,
		versions: NewMetaDataVersionService(repo),
		tuples:   NewRepositoryTupleService(repo),
		logger:   log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Persist writes the given rule configurations under databaseName and
// returns one version stamp per persisted tuple, in tuple-emission order.
// Configurations that flatten to nothing contribute no stamps.
func (s *DatabaseRuleService) Persist(ctx context.Context, databaseName string, configs []rule.Configuration) ([]MetaDataVersion, error) {
	if err := validateDatabaseName(databaseName); err != nil {
		return nil, err
	}

	var result []MetaDataVersion
	for _, config := range configs {
		tuples := s.swapper.SwapToTuples(config)
		if len(tuples) == 0 {
			continue
		}

		nodePath, err := s.registry.Lookup(config)
		if err != nil {
			return nil, err
		}

		stamps, err := s.persistTuples(ctx, databaseName, nodePath.Root().RuleType(), tuples)
		if err != nil {
			return nil, err
		}
		result = append(result, stamps...)
	}
	return result, nil
}

func (s *DatabaseRuleService) persistTuples(ctx context.Context, databaseName, ruleType string, tuples []tuple.RepositoryTuple) ([]MetaDataVersion, error) {
	result := make([]MetaDataVersion, 0, len(tuples))
	for _, each := range tuples {
		nextVersion, err := s.versions.Persist(ctx, metadata.RuleVersionNodePath(databaseName, ruleType, each.Key), each.Value)
		if err != nil {
			return nil, err
		}
		result = append(result, NewMetaDataVersion(metadata.RulePath(databaseName, ruleType, each.Key), maxVersion(InitVersion, nextVersion-1)))
	}
	s.logger.Debugf("persisted %d tuples of rule %s under database %s", len(tuples), ruleType, databaseName)
	return result, nil
}

// Delete removes the entire subtree of one rule type under databaseName.
func (s *DatabaseRuleService) Delete(ctx context.Context, databaseName, ruleTypeName string) error {
	if err := validateDatabaseName(databaseName); err != nil {
		return err
	}
	return s.repo.Delete(ctx, metadata.RulePath(databaseName, ruleTypeName))
}

// DeleteConfigurations removes the leaves of the given rule configurations
// and returns one deletion record per removed leaf. Within one configuration
// the tuples are walked in reverse emission order, so a dependency is never
// removed before its dependents.
func (s *DatabaseRuleService) DeleteConfigurations(ctx context.Context, databaseName string, configs []rule.Configuration) ([]MetaDataVersion, error) {
	if err := validateDatabaseName(databaseName); err != nil {
		return nil, err
	}

	var result []MetaDataVersion
	for _, config := range configs {
		tuples := s.swapper.SwapToTuples(config)
		if len(tuples) == 0 {
			continue
		}

		nodePath, err := s.registry.Lookup(config)
		if err != nil {
			return nil, err
		}

		ruleType := nodePath.Root().RuleType()
		for i := len(tuples) - 1; i >= 0; i-- {
			toBeDeletedKey := metadata.RulePath(databaseName, ruleType, tuples[i].Key)
			if err := s.repo.Delete(ctx, toBeDeletedKey); err != nil {
				return nil, err
			}
			result = append(result, NewDeletedMetaDataVersion(toBeDeletedKey))
		}
	}
	return result, nil
}

// Load reads every rule configuration persisted under databaseName, valued at
// each leaf's active version.
func (s *DatabaseRuleService) Load(ctx context.Context, databaseName string) ([]rule.Configuration, error) {
	if err := validateDatabaseName(databaseName); err != nil {
		return nil, err
	}

	tuples, err := s.tuples.Load(ctx, metadata.DatabaseRulesRootPath(databaseName))
	if err != nil {
		return nil, err
	}
	return s.swapper.SwapToRuleConfigurations(tuples)
}

func validateDatabaseName(databaseName string) error {
	return validation.New(validation.FailFast()).
		AddValidator(validation.NewEmptyStringValidator("databaseName", databaseName)).
		AddValidator(validation.NewPatternValidator("^"+nodepath.Identifier+"$", databaseName,
			fmt.Errorf("invalid database name %q", databaseName))).
		Validate()
}

func maxVersion(a, b int) int {
	if a > b {
		return a
	}
	return b
}
