package brackets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgo/brackets"
)

func TestCheck_Balanced(t *testing.T) {
	rep := brackets.Check("a(b[c]d)e")
	assert.True(t, rep.Balanced)
	assert.Equal(t, brackets.Balanced, rep.Reason)
	assert.Equal(t, -1, rep.Pos)
	assert.Equal(t, 2, rep.MaxDepth)
	assert.Nil(t, rep.Ops, "ops are not recorded by default")
}

func TestCheck_Empty(t *testing.T) {
	rep := brackets.Check("")
	assert.True(t, rep.Balanced)
	assert.Equal(t, 0, rep.MaxDepth)
}

func TestCheck_UnexpectedCloser(t *testing.T) {
	rep := brackets.Check("ab)(")
	assert.False(t, rep.Balanced)
	assert.Equal(t, brackets.UnexpectedCloser, rep.Reason)
	assert.Equal(t, 2, rep.Pos)
	assert.Equal(t, ')', rep.Found)
	assert.Equal(t, rune(0), rep.Expected)
}

func TestCheck_Mismatched(t *testing.T) {
	rep := brackets.Check("([[[00]])")
	assert.False(t, rep.Balanced)
	assert.Equal(t, brackets.MismatchedCloser, rep.Reason)
	assert.Equal(t, 8, rep.Pos)
	assert.Equal(t, ']', rep.Expected)
	assert.Equal(t, ')', rep.Found)
	assert.Equal(t, 4, rep.MaxDepth)
}

// TestCheck_UnclosedReportsInnermost: "(()" leaves the first opener open.
func TestCheck_UnclosedReportsInnermost(t *testing.T) {
	rep := brackets.Check("(()")
	assert.False(t, rep.Balanced)
	assert.Equal(t, brackets.UnclosedOpener, rep.Reason)
	assert.Equal(t, 0, rep.Pos)
	assert.Equal(t, ')', rep.Expected)

	rep = brackets.Check("{[(")
	assert.Equal(t, 2, rep.Pos, "innermost pending opener")
	assert.Equal(t, ')', rep.Expected)
}

// TestCheck_PositionsAreRuneIndexes: multi-byte runes count once.
func TestCheck_PositionsAreRuneIndexes(t *testing.T) {
	rep := brackets.Check("ééé]")
	assert.Equal(t, brackets.UnexpectedCloser, rep.Reason)
	assert.Equal(t, 3, rep.Pos)
}

func TestCheck_OpsForMatchingInput(t *testing.T) {
	rep := brackets.Check("([{123}])", brackets.WithRecordOps(true))
	require.True(t, rep.Balanced)
	require.Equal(t, []brackets.Op{
		{Kind: brackets.OpPush, Pos: 0, Glyph: '(', Expected: ')', Depth: 1},
		{Kind: brackets.OpPush, Pos: 1, Glyph: '[', Expected: ']', Depth: 2},
		{Kind: brackets.OpPush, Pos: 2, Glyph: '{', Expected: '}', Depth: 3},
		{Kind: brackets.OpMatch, Pos: 6, Glyph: '}', Expected: '}', Depth: 2},
		{Kind: brackets.OpMatch, Pos: 7, Glyph: ']', Expected: ']', Depth: 1},
		{Kind: brackets.OpMatch, Pos: 8, Glyph: ')', Expected: ')', Depth: 0},
		{Kind: brackets.OpResult, Pos: -1, Depth: 0},
	}, rep.Ops)
}

func TestCheck_OpsForMismatch(t *testing.T) {
	rep := brackets.Check("([})", brackets.WithRecordOps(true))
	require.False(t, rep.Balanced)
	require.Equal(t, []brackets.Op{
		{Kind: brackets.OpPush, Pos: 0, Glyph: '(', Expected: ')', Depth: 1},
		{Kind: brackets.OpPush, Pos: 1, Glyph: '[', Expected: ']', Depth: 2},
		{Kind: brackets.OpMismatch, Pos: 2, Glyph: '}', Expected: ']', Depth: 2},
		{Kind: brackets.OpResult, Pos: -1, Expected: ']', Depth: 2},
	}, rep.Ops)
}

func TestCheck_OpsForUnclosed(t *testing.T) {
	rep := brackets.Check("12(1+2", brackets.WithRecordOps(true))
	require.Equal(t, brackets.UnclosedOpener, rep.Reason)
	require.Equal(t, []brackets.Op{
		{Kind: brackets.OpPush, Pos: 2, Glyph: '(', Expected: ')', Depth: 1},
		{Kind: brackets.OpUnclosed, Pos: 2, Glyph: '(', Expected: ')', Depth: 1},
		{Kind: brackets.OpResult, Pos: -1, Expected: ')', Depth: 1},
	}, rep.Ops)
}

func TestCheck_InertOpsAndHook(t *testing.T) {
	var kinds []brackets.OpKind
	rep := brackets.Check("a()",
		brackets.WithRecordInert(true),
		brackets.WithOnOp(func(op brackets.Op) { kinds = append(kinds, op.Kind) }),
	)
	assert.True(t, rep.Balanced)
	assert.Nil(t, rep.Ops, "hook only, nothing recorded")
	assert.Equal(t, []brackets.OpKind{
		brackets.OpSkip, brackets.OpPush, brackets.OpMatch, brackets.OpResult,
	}, kinds)
}

func TestCheck_Underflow(t *testing.T) {
	rep := brackets.Check("]", brackets.WithRecordOps(true))
	require.Len(t, rep.Ops, 2)
	assert.Equal(t, brackets.OpUnderflow, rep.Ops[0].Kind)
	assert.Equal(t, brackets.OpResult, rep.Ops[1].Kind)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "balanced", brackets.Balanced.String())
	assert.Equal(t, "unexpected closer", brackets.UnexpectedCloser.String())
	assert.Equal(t, "mismatched closer", brackets.MismatchedCloser.String())
	assert.Equal(t, "unclosed opener", brackets.UnclosedOpener.String())
	assert.Equal(t, "unknown", brackets.Reason(42).String())
	assert.Equal(t, "push", brackets.OpPush.String())
	assert.Equal(t, "result", brackets.OpResult.String())
	assert.Equal(t, "unknown", brackets.OpKind(42).String())
}
