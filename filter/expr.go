package filter

import (
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/datacite/metadata"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	custom     map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.custom, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		custom: make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	custom map[string]any
	cache  *lruCache
}

// Compile compiles an expression into an executable filter. The expression is
// type-checked against the DOI environment, so unknown names fail here.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	env := newEnvironment(metadata.DOIData{}, c.custom)
	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		custom:     c.custom,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate reports whether the DOI matches. Evaluation errors count as no match.
func (f *exprFilter) Evaluate(doi metadata.DOIData) bool {
	ok, err := f.Match(doi)
	return err == nil && ok
}

// Match runs the program against the DOI
func (f *exprFilter) Match(doi metadata.DOIData) (bool, error) {
	result, err := expr.Run(f.program, newEnvironment(doi, f.custom))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, DOI: doi.Attributes.DOI, Err: err}
	}
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// newEnvironment flattens a DOI into the variables and helpers a filter can use
func newEnvironment(doi metadata.DOIData, custom map[string]any) map[string]any {
	a := doi.Attributes
	env := make(map[string]any, 64)

	addHelperFunctions(env)

	env["doi"] = a.DOI
	env["prefix"] = a.Prefix
	env["suffix"] = a.Suffix
	env["state"] = a.State.String()
	env["title"] = doi.Title()
	env["titles"] = titleTexts(a.Titles)
	env["creators"] = a.Creators.Names()
	env["contributors"] = contributorNames(a.Contributors)
	env["publisher"] = publisherName(a.Publisher)
	env["publicationYear"] = int(a.PublicationYear)
	env["resourceTypeGeneral"] = ""
	env["resourceType"] = ""
	if a.Types != nil {
		env["resourceTypeGeneral"] = a.Types.ResourceTypeGeneral.String()
		env["resourceType"] = a.Types.ResourceType
	}
	env["subjects"] = subjectTexts(a.Subjects)
	env["language"] = a.Language
	env["version"] = a.Version
	env["url"] = a.URL
	env["schemaVersion"] = a.SchemaVersion
	env["isActive"] = a.IsActive
	env["clientId"] = doi.Relationships.ClientID()
	env["providerId"] = ""
	if p := doi.Relationships.Provider; p != nil && p.Data != nil {
		env["providerId"] = p.Data.ID
	}
	env["citationCount"] = a.CitationCount
	env["viewCount"] = a.ViewCount
	env["downloadCount"] = a.DownloadCount
	env["referenceCount"] = a.ReferenceCount
	env["partCount"] = a.PartCount
	env["versionCount"] = a.VersionCount
	env["created"] = a.Created
	env["updated"] = a.Updated
	env["registered"] = time.Time{}
	if a.Registered != nil {
		env["registered"] = *a.Registered
	}
	_, hasAbstract := a.Descriptions.Abstract()
	env["hasAbstract"] = hasAbstract

	env["hasSubject"] = createHasSubjectFunc(a.Subjects)
	env["hasCreator"] = createHasCreatorFunc(a.Creators)
	env["hasRelation"] = createHasRelationFunc(a.RelatedIdentifiers)
	env["hasFunder"] = createHasFunderFunc(a.FundingReferences)

	maps.Copy(env, custom)
	return env
}

// addHelperFunctions adds the record-independent helpers. String matching uses
// expr's own contains, startsWith, endsWith and matches operators and its
// lower and upper builtins.
func addHelperFunctions(env map[string]any) {
	env["daysSince"] = func(t time.Time) int {
		if t.IsZero() {
			return -1
		}
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
}

func titleTexts(titles []metadata.Title) []string {
	out := make([]string, len(titles))
	for i, t := range titles {
		out[i] = t.Title
	}
	return out
}

func subjectTexts(subjects []metadata.Subject) []string {
	out := make([]string, len(subjects))
	for i, s := range subjects {
		out[i] = s.Subject
	}
	return out
}

func contributorNames(contributors []metadata.Contributor) []string {
	out := make([]string, len(contributors))
	for i, c := range contributors {
		out[i] = c.Name
	}
	return out
}

func publisherName(p *metadata.Publisher) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func createHasSubjectFunc(subjects []metadata.Subject) func(string) bool {
	return func(subject string) bool {
		for _, s := range subjects {
			if strings.EqualFold(s.Subject, subject) {
				return true
			}
		}
		return false
	}
}

// createHasCreatorFunc matches a creator by full name, family name or identifier
func createHasCreatorFunc(creators metadata.Creators) func(string) bool {
	return func(name string) bool {
		for _, c := range creators {
			if strings.EqualFold(c.Name, name) || strings.EqualFold(c.FamilyName, name) {
				return true
			}
			for _, id := range c.NameIdentifiers {
				if id.NameIdentifier != "" && strings.EqualFold(id.NameIdentifier, name) {
					return true
				}
			}
		}
		return false
	}
}

func createHasRelationFunc(related []metadata.RelatedIdentifier) func(string) bool {
	return func(relationType string) bool {
		for _, r := range related {
			if strings.EqualFold(string(r.RelationType), relationType) {
				return true
			}
		}
		return false
	}
}

func createHasFunderFunc(funding []metadata.FundingReference) func(string) bool {
	return func(funder string) bool {
		for _, f := range funding {
			if strings.EqualFold(f.FunderName, funder) || (f.FunderIdentifier != "" && strings.EqualFold(f.FunderIdentifier, funder)) {
				return true
			}
		}
		return false
	}
}
