package postgres

import sq "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ILikeContains matches column case-insensitively against a substring.
func ILikeContains(column, substr string) sq.ILike {
	return sq.ILike{column: "%" + escapeLike(substr) + "%"}
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
