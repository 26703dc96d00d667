// Package policy provides expression-based filters over assessment gaps
// and risks, compiled from CEL (Common Expression Language).
//
// Assessment programs rarely score everything at once: a regulator review
// might only consider critical regulatory gaps, a vendor review only risks
// with weak controls. Policy filters let callers express those selections
// declaratively and apply them before scoring:
//
//	filter, err := policy.CompileGapFilter(`severity == "critical" && category == "regulatory"`)
//	if err != nil {
//	    return err
//	}
//	selected, err := filter.Apply(gaps)
//
// Gap expressions can reference severity, category, title, description,
// priority, and size. Risk expressions can reference category, level,
// likelihood, impact, title, and control. Expressions must evaluate to a
// boolean; compilation rejects anything else.
package policy
