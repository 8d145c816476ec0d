package repository

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"catalog-api/internal/domain"

	"go.uber.org/zap"
)

// Record is a single result row of the query facade, keyed by column name.
type Record map[string]any

// Shape classifies a query string into one of the fixed operation patterns
// the application issues. The caller set is closed and hand-written, so
// structural markers are enough; there is deliberately no SQL parser here.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeWrite
	ShapeDomainList
	ShapeCategoryCounts
	ShapeBrandCounts
	ShapeJoinedProducts
	ShapeProductCount
	ShapeSimple
)

// ClassifyShape tests markers in precedence order; the first match wins.
// A query carrying several markers is always handled by the earliest
// listed shape, which keeps classification deterministic without parsing.
func ClassifyShape(query string) Shape {
	switch {
	case strings.Contains(query, "INSERT INTO") || strings.Contains(query, "UPDATE"):
		return ShapeWrite
	case strings.Contains(query, "SELECT DISTINCT domain FROM products"):
		return ShapeDomainList
	case strings.Contains(query, "FROM categories") && strings.Contains(query, "JOIN products"):
		return ShapeCategoryCounts
	case strings.Contains(query, "FROM brands") && strings.Contains(query, "JOIN products"):
		return ShapeBrandCounts
	case strings.Contains(query, "FROM products") && strings.Contains(query, "JOIN categories"):
		return ShapeJoinedProducts
	case strings.Contains(query, "COUNT(*)") && strings.Contains(query, "FROM products"):
		return ShapeProductCount
	case strings.Contains(query, "FROM products"),
		strings.Contains(query, "FROM categories"),
		strings.Contains(query, "FROM brands"),
		strings.Contains(query, "FROM users"):
		return ShapeSimple
	default:
		return ShapeUnknown
	}
}

var (
	limitTextRe  = regexp.MustCompile(`(?i)LIMIT\s+(\d+)`)
	offsetTextRe = regexp.MustCompile(`(?i)OFFSET\s+(\d+)`)
)

// GetAll evaluates a list-shaped query and returns every matching row.
// Misses and unrecognized shapes degrade to an empty result; nothing in
// this layer returns an error (callers are fixed internal code, an
// unmatched query is a drift bug logged for diagnosis, not a user fault).
func (s *Store) GetAll(query string, params ...any) []Record {
	switch ClassifyShape(query) {
	case ShapeSimple:
		return s.simpleList(query, params)
	case ShapeUnknown:
		s.log.Warn("Unmatched query shape in GetAll", zap.String("query", compact(query)))
		return nil
	default:
		return s.ExecuteQuery(query, params...)
	}
}

// GetOne evaluates a single-row query; nil means no match.
func (s *Store) GetOne(query string, params ...any) Record {
	switch ClassifyShape(query) {
	case ShapeProductCount:
		dom, _ := asString(param(params, 0))
		return Record{"total": s.CountProducts(dom)}
	case ShapeJoinedProducts:
		if len(params) >= 2 {
			dom, _ := asString(params[0])
			if id, ok := asInt64(params[1]); ok {
				if v := s.ProductByID(dom, id); v != nil {
					return toRecord(v)
				}
			}
		}
		return nil
	case ShapeCategoryCounts:
		if len(params) >= 2 {
			dom, _ := asString(params[0])
			if id, ok := asInt64(params[1]); ok {
				if c := s.CategoryWithCount(dom, id); c != nil {
					return toRecord(c)
				}
			}
		}
		return nil
	case ShapeBrandCounts:
		if len(params) >= 2 {
			dom, _ := asString(params[0])
			if id, ok := asInt64(params[1]); ok {
				if b := s.BrandWithCount(dom, id); b != nil {
					return toRecord(b)
				}
			}
		}
		return nil
	case ShapeSimple:
		return s.simpleOne(query, params)
	default:
		s.log.Warn("Unmatched query shape in GetOne", zap.String("query", compact(query)))
		return nil
	}
}

// Run evaluates a write statement. Unknown tables get a permissive
// success response; callers never exercise that path with a real unknown
// table, and correcting it silently could break the ones that do not
// check specifics.
func (s *Store) Run(query string, params ...any) RunResult {
	switch {
	case strings.Contains(query, "INSERT INTO users"):
		username, _ := asString(param(params, 0))
		email, _ := asString(param(params, 1))
		hash, _ := asString(param(params, 2))
		first, _ := asString(param(params, 3))
		last, _ := asString(param(params, 4))
		return s.InsertUser(username, email, hash, first, last)

	case strings.Contains(query, "UPDATE users"):
		id, ok := asInt64(param(params, len(params)-1))
		if !ok {
			return RunResult{Changes: 1}
		}
		var res RunResult
		if strings.Contains(query, "first_name = ?") {
			first, _ := asString(param(params, 0))
			last, _ := asString(param(params, 1))
			avatar, _ := asString(param(params, 2))
			res = s.UpdateUserProfile(id, first, last, avatar)
		} else {
			res = s.TouchUser(id)
		}
		if res.Changes == 0 {
			// Historical contract: a missed update still reports success.
			return RunResult{Changes: 1}
		}
		return res

	default:
		s.log.Warn("Write to unrecognized table, returning permissive success",
			zap.String("query", compact(query)))
		return RunResult{Changes: 1}
	}
}

// ExecuteQuery is the superset entry point used for joins, aggregates and
// writes alike. Writes come back as a single record holding the RunResult.
func (s *Store) ExecuteQuery(query string, params ...any) []Record {
	switch ClassifyShape(query) {
	case ShapeWrite:
		return []Record{toRecord(s.Run(query, params...))}

	case ShapeDomainList:
		domains := s.Domains()
		out := make([]Record, 0, len(domains))
		for _, d := range domains {
			out = append(out, Record{"domain": d})
		}
		return out

	case ShapeCategoryCounts:
		dom, _ := asString(param(params, 0))
		if len(params) >= 2 {
			if id, ok := asInt64(params[1]); ok {
				if c := s.CategoryWithCount(dom, id); c != nil {
					return []Record{toRecord(c)}
				}
				return nil
			}
		}
		return toRecords(s.CategoriesWithCounts(dom))

	case ShapeBrandCounts:
		dom, _ := asString(param(params, 0))
		if len(params) >= 2 {
			if id, ok := asInt64(params[1]); ok {
				if b := s.BrandWithCount(dom, id); b != nil {
					return []Record{toRecord(b)}
				}
				return nil
			}
		}
		return toRecords(s.BrandsWithCounts(dom))

	case ShapeJoinedProducts:
		return s.joinedFromQuery(query, params)

	case ShapeProductCount:
		dom, _ := asString(param(params, 0))
		return []Record{{"total": s.CountProducts(dom)}}

	case ShapeSimple:
		return s.simpleList(query, params)

	default:
		s.log.Warn("Unmatched query shape in ExecuteQuery", zap.String("query", compact(query)))
		return nil
	}
}

// joinedFromQuery reconstructs the joined product listing / search from
// its markers. Positional params follow the order the statements are
// built in: domain, search term (doubled for name and attributes),
// category slug, brand slug, price bounds, then limit and offset.
func (s *Store) joinedFromQuery(query string, params []any) []Record {
	f := SearchFilter{Limit: NoLimit}
	rest := params

	if len(rest) > 0 {
		f.Domain, _ = asString(rest[0])
		rest = rest[1:]
	}
	if strings.Contains(query, "LIKE") {
		for len(rest) > 0 {
			str, ok := asString(rest[0])
			if !ok || !strings.Contains(str, "%") {
				break
			}
			f.Term = strings.Trim(str, "%")
			rest = rest[1:]
		}
	}
	if strings.Contains(query, "c.slug = ?") && len(rest) > 0 {
		f.CategorySlug, _ = asString(rest[0])
		rest = rest[1:]
	}
	if strings.Contains(query, "b.slug = ?") && len(rest) > 0 {
		f.BrandSlug, _ = asString(rest[0])
		rest = rest[1:]
	}
	if strings.Contains(query, "p.price >=") && len(rest) > 0 {
		if v, ok := asFloat(rest[0]); ok {
			f.MinPrice = &v
		}
		rest = rest[1:]
	}
	if strings.Contains(query, "p.price <=") && len(rest) > 0 {
		if v, ok := asFloat(rest[0]); ok {
			f.MaxPrice = &v
		}
		rest = rest[1:]
	}
	if strings.Contains(query, "LIMIT") {
		if len(rest) > 0 {
			if v, ok := asInt(rest[0]); ok {
				f.Limit = v
			}
			rest = rest[1:]
		}
		if len(rest) > 0 {
			if v, ok := asInt(rest[0]); ok {
				f.Offset = v
			}
		}
	}

	searchShaped := f.Term != "" || f.CategorySlug != "" || f.BrandSlug != "" ||
		f.MinPrice != nil || f.MaxPrice != nil ||
		strings.Contains(query, "ORDER BY p.rating")
	if searchShaped {
		views, _ := s.SearchProducts(f)
		return toRecords(views)
	}
	return toRecords(s.JoinedProducts(f.Domain, f.Limit, f.Offset))
}

// simpleList handles the plain scoped listings: positional domain filter,
// optional LIKE substring search, LIMIT/OFFSET literals in the text.
func (s *Store) simpleList(query string, params []any) []Record {
	switch {
	case strings.Contains(query, "FROM products"):
		var products []domain.Product
		if dom, ok := firstPlainString(params); ok {
			products = s.ProductsByDomain(dom)
		} else {
			s.mu.RLock()
			products = append(products, s.products...)
			s.mu.RUnlock()
		}
		if strings.Contains(query, "LIKE") {
			if term, ok := likeTerm(params); ok {
				var kept []domain.Product
				for _, p := range products {
					if matchesTerm(p, term) {
						kept = append(kept, p)
					}
				}
				products = kept
			}
		}
		limit, offset := NoLimit, 0
		if m := limitTextRe.FindStringSubmatch(query); m != nil {
			limit, _ = strconv.Atoi(m[1])
			if m := offsetTextRe.FindStringSubmatch(query); m != nil {
				offset, _ = strconv.Atoi(m[1])
			}
		}
		return toRecords(paginate(products, limit, offset))

	case strings.Contains(query, "FROM categories"):
		if dom, ok := firstPlainString(params); ok {
			return toRecords(s.Categories(dom))
		}
		s.mu.RLock()
		defer s.mu.RUnlock()
		return toRecords(s.categories)

	case strings.Contains(query, "FROM brands"):
		if dom, ok := firstPlainString(params); ok {
			return toRecords(s.Brands(dom))
		}
		s.mu.RLock()
		defer s.mu.RUnlock()
		return toRecords(s.brands)

	case strings.Contains(query, "FROM users"):
		users := s.Users()
		out := make([]Record, 0, len(users))
		for _, u := range users {
			out = append(out, userRecord(u))
		}
		return out
	}
	return nil
}

// simpleOne handles single-row lookups: user by login/username/id, product
// by (domain, id) or bare id.
func (s *Store) simpleOne(query string, params []any) Record {
	if strings.Contains(query, "FROM users") {
		switch {
		case strings.Contains(query, "WHERE username = ? OR email = ?"):
			login, _ := asString(param(params, 0))
			if u := s.UserByLogin(login); u != nil {
				return userRecord(*u)
			}
		case strings.Contains(query, "WHERE username ="):
			username, _ := asString(param(params, 0))
			if u := s.UserByUsername(username); u != nil {
				return userRecord(*u)
			}
		case strings.Contains(query, "WHERE id ="):
			if id, ok := asInt64(param(params, 0)); ok {
				if u := s.UserByID(id); u != nil {
					return userRecord(*u)
				}
			}
		}
		return nil
	}

	if strings.Contains(query, "FROM products") {
		if strings.Contains(query, "WHERE") && len(params) >= 2 {
			dom, _ := asString(params[0])
			if id, ok := asInt64(params[1]); ok {
				s.mu.RLock()
				defer s.mu.RUnlock()
				for _, p := range s.products {
					if p.Domain == dom && p.ID == id {
						return toRecord(p)
					}
				}
			}
			return nil
		}
		if len(params) == 1 {
			if id, ok := asInt64(params[0]); ok {
				s.mu.RLock()
				defer s.mu.RUnlock()
				for _, p := range s.products {
					if p.ID == id {
						return toRecord(p)
					}
				}
			}
		}
	}
	return nil
}

// --- param and record helpers ---

func param(params []any, i int) any {
	if i < 0 || i >= len(params) {
		return nil
	}
	return params[i]
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	n, ok := asInt64(v)
	return int(n), ok
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// firstPlainString returns the first string param that is not a LIKE
// pattern; by caller convention that is the domain filter.
func firstPlainString(params []any) (string, bool) {
	for _, p := range params {
		if s, ok := p.(string); ok && !strings.Contains(s, "%") {
			return s, true
		}
	}
	return "", false
}

// likeTerm returns the lowercased body of the first %-wrapped param.
func likeTerm(params []any) (string, bool) {
	for _, p := range params {
		if s, ok := p.(string); ok && strings.Contains(s, "%") {
			return strings.ToLower(strings.Trim(s, "%")), true
		}
	}
	return "", false
}

// toRecord flattens any value into a Record through its JSON form.
func toRecord(v any) Record {
	b, err := json.Marshal(v)
	if err != nil {
		return Record{}
	}
	var m Record
	if err := json.Unmarshal(b, &m); err != nil {
		return Record{}
	}
	return m
}

func toRecords[T any](items []T) []Record {
	out := make([]Record, 0, len(items))
	for _, it := range items {
		out = append(out, toRecord(it))
	}
	return out
}

// userRecord keeps password_hash in facade results; the JSON tag hides it
// from HTTP responses but the facade returns rows verbatim.
func userRecord(u domain.User) Record {
	r := toRecord(u)
	r["password_hash"] = u.PasswordHash
	return r
}

func compact(query string) string {
	q := strings.Join(strings.Fields(query), " ")
	if len(q) > 80 {
		q = q[:80] + "..."
	}
	return q
}
