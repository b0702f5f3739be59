// Package reconciler builds the directed linkage graph over extracted
// services, folds it into candidate rake-cycle chains and cross-validates
// those chains against the authored link summary.
package reconciler

import "github.com/ar-in0/western-railways-simulator/pkg/wtt"

// BuildChains treats every service as a graph node with a directed edge from
// u to v when u's successor identifier resolves to one of v's identifiers.
// Every node with no incoming edge but at least one outgoing edge starts a
// chain, followed iteratively over an index arena. A node is never visited
// twice, so malformed cycles are truncated rather than looping.
func BuildChains(services []*wtt.Service) [][]*wtt.Service {
	indexByID := map[string]int{}
	for i, service := range services {
		for _, id := range service.Identifiers {
			if _, exists := indexByID[id]; !exists {
				indexByID[id] = i
			}
		}
	}

	next := make([]int, len(services))
	hasPredecessor := make([]bool, len(services))
	for i := range next {
		next[i] = -1
	}

	for i, service := range services {
		if service.Successor == "" {
			continue
		}
		j, ok := indexByID[service.Successor]
		if !ok || j == i {
			// Linked to a service outside this set; not part of a chain.
			continue
		}
		next[i] = j
		hasPredecessor[j] = true
	}

	visited := make([]bool, len(services))
	var chains [][]*wtt.Service

	for i := range services {
		if visited[i] || hasPredecessor[i] || next[i] < 0 {
			continue
		}

		var chain []*wtt.Service
		for j := i; j >= 0 && !visited[j]; j = next[j] {
			visited[j] = true
			chain = append(chain, services[j])
		}
		chains = append(chains, chain)
	}

	return chains
}

// successorTargets returns the set of identifiers that appear as some
// service's successor. An itinerary whose first declared identifier is in
// this set is not actually a chain start, which triggers the
// summary-as-ground-truth override.
func successorTargets(services []*wtt.Service) map[string]bool {
	targets := map[string]bool{}
	for _, service := range services {
		if service.Successor != "" {
			targets[service.Successor] = true
		}
	}
	return targets
}
