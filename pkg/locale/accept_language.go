package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing. RFC 7231 sets no limit, but
// 4KB covers any legitimate header while bounding work on hostile input.
const maxAcceptLanguageLength = 4096

// langWithQ is one Accept-Language entry with its quality weight.
type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguage splits an Accept-Language header into lowercase tags
// ordered by descending quality. Malformed entries are skipped rather than
// failing the whole header.
func parseAcceptLanguage(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langAndQ := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(langAndQ[0]))
		q := 1.0

		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if qVal, err := strconv.ParseFloat(qPart[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}

		if lang != "" {
			languages = append(languages, langWithQ{lang: lang, q: q})
		}
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})

	return languages
}

// matchAcceptLanguage negotiates header against the supported set in
// quality order. Each candidate is tried as an exact tag first, then by its
// primary subtag (de-CH falls back to de), and the first hit wins — a
// candidate listed earlier beats a later exact match, so "de-DE,en;q=0.8"
// against {en, de} yields de. Returns "" when nothing matches.
func matchAcceptLanguage(header string, supported []string) string {
	languages := parseAcceptLanguage(header)
	if len(languages) == 0 || len(supported) == 0 {
		return ""
	}

	normalized := make([]string, len(supported))
	for i, l := range supported {
		normalized[i] = strings.ToLower(l)
	}

	for _, lq := range languages {
		if idx := slices.Index(normalized, lq.lang); idx >= 0 {
			return supported[idx]
		}
		if idx := strings.Index(lq.lang, "-"); idx > 0 {
			if i := slices.Index(normalized, lq.lang[:idx]); i >= 0 {
				return supported[i]
			}
		}
	}

	return ""
}
