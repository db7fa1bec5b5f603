// Package naming picks deterministic replacement names for identifiers that
// are bound more than once within a single function body. Each shadowed
// identifier maps to an ordered sequence of distinct names: a curated,
// human-readable sequence for the well-known accumulator identifiers, a
// qualifier-prefixed sequence for everything else, and a numbered
// continuation so coverage never runs out regardless of shadow depth.
package naming

import (
	"fmt"
	"sort"
)

// curatedSequences maps well-known problem identifiers to their replacement
// sequences. The first entry connotes the initial state, the last the final
// state, with domain-flavored steps in between. Entries within a sequence are
// pairwise distinct and never equal to the key itself.
var curatedSequences = map[string][]string{
	"recommendations": {
		"initial_recommendations", "base_recommendations", "activity_recommendations",
		"tactical_recommendations", "strategic_recommendations", "operational_recommendations",
		"enhanced_recommendations", "priority_recommendations", "final_recommendations",
	},
	"factors": {
		"initial_factors", "base_factors", "risk_factors", "confidence_factors",
		"weight_factors", "score_factors", "analysis_factors", "final_factors",
	},
	"warnings": {
		"initial_warnings", "critical_warnings", "security_warnings",
		"performance_warnings", "operational_warnings", "system_warnings", "final_warnings",
	},
	"alerts": {
		"initial_alerts", "critical_alerts", "warning_alerts",
		"info_alerts", "system_alerts", "user_alerts", "final_alerts",
	},
	"risks": {
		"initial_risks", "operational_risks", "security_risks",
		"financial_risks", "strategic_risks", "compliance_risks", "final_risks",
	},
	"risk_factors": {
		"initial_risk_factors", "behavioral_risk_factors", "environmental_risk_factors",
		"operational_risk_factors", "strategic_risk_factors", "system_risk_factors", "final_risk_factors",
	},
	"gaps": {
		"initial_gaps", "coverage_gaps", "skill_gaps",
		"resource_gaps", "capability_gaps", "strategic_gaps", "final_gaps",
	},
	"anomalies": {
		"initial_anomalies", "behavioral_anomalies", "statistical_anomalies",
		"temporal_anomalies", "pattern_anomalies", "system_anomalies", "final_anomalies",
	},
	"suggestions": {
		"initial_suggestions", "improvement_suggestions", "optimization_suggestions",
		"tactical_suggestions", "strategic_suggestions", "operational_suggestions", "final_suggestions",
	},
	"actions": {
		"initial_actions", "immediate_actions", "remedial_actions",
		"preventive_actions", "corrective_actions", "long_term_actions", "final_actions",
	},
	"confidence_factors": {
		"initial_confidence_factors", "data_confidence_factors", "analysis_confidence_factors",
		"prediction_confidence_factors", "validation_confidence_factors", "model_confidence_factors",
		"final_confidence_factors",
	},
	"suggested_additions": {
		"initial_suggested_additions", "tactical_suggested_additions", "strategic_suggested_additions",
		"operational_suggested_additions", "enhancement_suggested_additions", "optimization_suggested_additions",
		"final_suggested_additions",
	},
	"parts": {
		"initial_parts", "header_parts", "body_parts",
		"content_parts", "footer_parts", "metadata_parts", "final_parts",
	},
	"report": {
		"initial_report", "summary_report", "detailed_report",
		"analysis_report", "metrics_report", "comprehensive_report", "final_report",
	},
	"patterns": {
		"initial_patterns", "behavioral_patterns", "temporal_patterns",
		"usage_patterns", "access_patterns", "query_patterns", "final_patterns",
	},
	"results": {
		"initial_results", "processed_results", "filtered_results",
		"validated_results", "transformed_results", "aggregated_results", "final_results",
	},
	"improvements": {
		"initial_improvements", "priority_improvements", "performance_improvements",
		"quality_improvements", "strategic_improvements", "final_improvements",
	},
}

// genericQualifiers synthesizes a sequence for identifiers outside the curated
// set by prefixing the identifier, ordered from initial to final state.
var genericQualifiers = [...]string{
	"initial_", "base_", "processed_", "enhanced_", "updated_", "modified_", "final_",
}

// NameFor returns the replacement name for the ordinal-th (0-based) binding of
// ident. Curated identifiers draw from their curated sequence first, all other
// identifiers from the qualifier-prefixed sequence; once either is exhausted
// the name continues as "<ident>_<ordinal+1>", so a valid name exists for
// every ordinal. Deterministic: same inputs always yield the same name.
//
// ident: the identifier being split into distinct bindings.
// ordinal: the binding's 0-based position among all bindings in its region.
func NameFor(ident string, ordinal int) string {
	if ordinal < 0 {
		return ident
	}
	if seq, ok := curatedSequences[ident]; ok {
		if ordinal < len(seq) {
			return seq[ordinal]
		}
	} else if ordinal < len(genericQualifiers) {
		return genericQualifiers[ordinal] + ident
	}
	// Numbered continuation. The 1-based suffix keeps these distinct from the
	// tiers above (no curated or qualified entry ends in a digit) and from the
	// original identifier.
	return fmt.Sprintf("%s_%d", ident, ordinal+1)
}

// NamesFor returns the first n replacement names for ident, in binding order.
func NamesFor(ident string, n int) []string {
	if n <= 0 {
		return nil
	}
	names := make([]string, n)
	for i := range names {
		names[i] = NameFor(ident, i)
	}
	return names
}

// Known returns the curated identifier set in sorted order. Sweep-style
// discovery uses this as the default set of identifiers worth scanning for.
func Known() []string {
	idents := make([]string, 0, len(curatedSequences))
	for ident := range curatedSequences {
		idents = append(idents, ident)
	}
	sort.Strings(idents)
	return idents
}

// IsKnown reports whether ident has a curated sequence.
func IsKnown(ident string) bool {
	_, ok := curatedSequences[ident]
	return ok
}
