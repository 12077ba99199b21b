// SPDX-License-Identifier: MIT

package notation

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type reactionExpr struct {
	ID        string      `( @( Ident | Int ) ":" )?`
	Reactants []*termExpr `@@ ( "+" @@ )*`
	Products  []*termExpr `">>" @@ ( "+" @@ )*`
}

type termExpr struct {
	Graph   *graphExpr   `  @@`
	Species *speciesExpr `| @@`
}

type graphExpr struct {
	Atoms []*atomExpr `"{" @@*`
	Bonds []*bondExpr `";" @@* "}"`
}

type atomExpr struct {
	Key       int    `@Int ":"`
	Symbol    string `@Ident`
	ImplicitH int    `( "[" @Int "]" )?`
	Parity    string `@( "@" "@"? )?`
}

type bondExpr struct {
	A      int    `@Int "-"`
	B      int    `@Int`
	Order  *int   `( "=" @Int )?`
	Parity string `@( "@" "@"? )?`
}

type speciesExpr struct {
	Name string `@Ident`
	Args []int  `( "(" ( @Int ( "," @Int )* )? ")" )?`
}

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Arrow", Pattern: `>>`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[{}\[\]();:+\-=@,]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var (
	parseReactionExpr = participle.MustBuild[reactionExpr](
		participle.Lexer(notationLexer),
		participle.UseLookahead(2),
	)
	parseTermExpr = participle.MustBuild[termExpr](
		participle.Lexer(notationLexer),
	)
)
