// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RegularSuite covers the structural contract of Regular: fill state, shape
// checks, snapshots, removal and capacity management.
type RegularSuite struct {
	suite.Suite
	m *matrix.Regular[float64]
}

func (s *RegularSuite) SetupTest() {
	s.m = matrix.NewDefaultRegular[float64]()
}

// fill appends rows or fails.
func (s *RegularSuite) fill(rows ...[]float64) {
	for _, r := range rows {
		s.Require().NoError(s.m.AddRow(r))
	}
}

func (s *RegularSuite) TestNewRegularRejectsNegativeCapacity() {
	_, err := matrix.NewRegular[int](-1, 3)
	s.Require().ErrorIs(err, matrix.ErrInvalidArgument)
	_, err = matrix.NewRegular[int](3, -1)
	s.Require().ErrorIs(err, matrix.ErrInvalidArgument)
}

func (s *RegularSuite) TestDefaultCapacity() {
	s.Equal(matrix.DefaultRowCapacity, s.m.RowCapacity())
	s.Equal(matrix.DefaultColCapacity, s.m.ColumnCapacity())
	s.True(s.m.IsEmpty())
	s.Equal(0, s.m.Size())
}

func (s *RegularSuite) TestFirstRowFixesColumns() {
	s.fill([]float64{1, 2, 3, 4, 5})
	s.Equal(1, s.m.Rows())
	s.Equal(5, s.m.Cols())
	s.GreaterOrEqual(s.m.ColumnCapacity(), 5)
	s.False(s.m.IsEmpty())

	err := s.m.AddRow([]float64{1, 2})
	s.Require().ErrorIs(err, matrix.ErrIncompatibleSize)
	s.Equal(1, s.m.Rows(), "failed insertion must not mutate")
}

func (s *RegularSuite) TestFirstColumnFixesRows() {
	s.Require().NoError(s.m.AddColumn([]float64{1, 2, 3, 4}))
	s.Equal(4, s.m.Rows())
	s.Equal(1, s.m.Cols())
	s.Require().NoError(s.m.AddColumn([]float64{5, 6, 7, 8}))
	CompareExact(s.T(), [][]float64{{1, 5}, {2, 6}, {3, 7}, {4, 8}}, s.m)

	s.Require().ErrorIs(s.m.AddColumn([]float64{1}), matrix.ErrIncompatibleSize)
}

func (s *RegularSuite) TestLengthThreeRowIntoTwoColumnMatrix() {
	s.fill([]float64{1, 2}, []float64{3, 4})
	s.Require().ErrorIs(s.m.AddRow([]float64{1, 2, 3}), matrix.ErrIncompatibleSize)
	CompareExact(s.T(), [][]float64{{1, 2}, {3, 4}}, s.m)
}

func (s *RegularSuite) TestNilAndEmptyArguments() {
	s.Require().ErrorIs(s.m.AddRow(nil), matrix.ErrNilArgument)
	s.Require().ErrorIs(s.m.AddColumn(nil), matrix.ErrNilArgument)
	s.Require().ErrorIs(s.m.AddRow([]float64{}), matrix.ErrInvalidArgument)
	s.Require().ErrorIs(s.m.AddColumn([]float64{}), matrix.ErrInvalidArgument)

	s.fill([]float64{1, 2})
	s.Require().ErrorIs(s.m.AddRow([]float64{}), matrix.ErrIncompatibleSize)
	_, err := s.m.SetRow(0, nil)
	s.Require().ErrorIs(err, matrix.ErrNilArgument)
	_, err = s.m.SetColumn(0, nil)
	s.Require().ErrorIs(err, matrix.ErrNilArgument)
}

func (s *RegularSuite) TestInsertRowBounds() {
	s.fill([]float64{1, 2})
	s.Require().ErrorIs(s.m.InsertRow(-1, []float64{0, 0}), matrix.ErrOutOfRange)
	s.Require().ErrorIs(s.m.InsertRow(2, []float64{0, 0}), matrix.ErrOutOfRange)
	s.Require().NoError(s.m.InsertRow(1, []float64{5, 6}))
	s.Require().NoError(s.m.InsertRow(0, []float64{7, 8}))
	CompareExact(s.T(), [][]float64{{7, 8}, {1, 2}, {5, 6}}, s.m)
}

func (s *RegularSuite) TestInsertColumnMiddle() {
	s.fill([]float64{1, 3}, []float64{4, 6})
	s.Require().NoError(s.m.InsertColumn(1, []float64{2, 5}))
	CompareExact(s.T(), [][]float64{{1, 2, 3}, {4, 5, 6}}, s.m)
	s.Require().ErrorIs(s.m.InsertColumn(4, []float64{0, 0}), matrix.ErrOutOfRange)
}

func (s *RegularSuite) TestRowLengthInvariantUnderMixedOps() {
	s.fill([]float64{1, 2, 3}, []float64{4, 5, 6})
	s.Require().NoError(s.m.AddColumn([]float64{7, 8}))
	s.Require().NoError(s.m.InsertRow(1, []float64{0, 0, 0, 0}))
	_, err := s.m.RemoveColumn(0)
	s.Require().NoError(err)
	_, err = s.m.RemoveRow(2)
	s.Require().NoError(err)

	for i := 0; i < s.m.Rows(); i++ {
		r, err := s.m.Row(i)
		s.Require().NoError(err)
		s.Len(r, s.m.Cols())
	}
	for j := 0; j < s.m.Cols(); j++ {
		c, err := s.m.Column(j)
		s.Require().NoError(err)
		s.Len(c, s.m.Rows())
	}
	CompareExact(s.T(), [][]float64{{2, 3, 7}, {0, 0, 0}}, s.m)
}

func (s *RegularSuite) TestSetRowRoundTrip() {
	s.fill([]float64{1, 2, 3}, []float64{4, 5, 6})
	prev, err := s.m.SetRow(1, []float64{9, 8, 7})
	s.Require().NoError(err)
	s.Equal([]float64{4, 5, 6}, prev)
	got, err := s.m.Row(1)
	s.Require().NoError(err)
	s.Equal([]float64{9, 8, 7}, got)

	_, err = s.m.SetRow(2, []float64{1, 1, 1})
	s.Require().ErrorIs(err, matrix.ErrOutOfRange)
	_, err = s.m.SetRow(0, []float64{1, 1})
	s.Require().ErrorIs(err, matrix.ErrIncompatibleSize)
}

func (s *RegularSuite) TestSetColumnReturnsPrevious() {
	s.fill([]float64{1, 2}, []float64{3, 4})
	prev, err := s.m.SetColumn(1, []float64{0, -1})
	s.Require().NoError(err)
	s.Equal([]float64{2, 4}, prev)
	CompareExact(s.T(), [][]float64{{1, 0}, {3, -1}}, s.m)
}

func (s *RegularSuite) TestSetReturnsPrevious() {
	s.fill([]float64{1, 2})
	prev, err := s.m.Set(0, 1, 42)
	s.Require().NoError(err)
	s.Equal(2.0, prev)
	s.Equal(42.0, MustAt(s.T(), s.m, 0, 1))
	_, err = s.m.Set(1, 0, 1)
	s.Require().ErrorIs(err, matrix.ErrOutOfRange)
	_, err = s.m.At(0, 2)
	s.Require().ErrorIs(err, matrix.ErrOutOfRange)
}

func (s *RegularSuite) TestRemoveRowInsertRowRestores() {
	s.fill([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	before := s.m.Clone()
	removed, err := s.m.RemoveRow(1)
	s.Require().NoError(err)
	s.Equal([]float64{3, 4}, removed)
	s.Require().NoError(s.m.InsertRow(1, removed))
	s.True(before.Equal(s.m))
}

func (s *RegularSuite) TestRemoveOnlyColumnEmpties() {
	s.Require().NoError(s.m.AddColumn([]float64{1, 2, 3}))
	col, err := s.m.RemoveColumn(0)
	s.Require().NoError(err)
	s.Equal([]float64{1, 2, 3}, col)
	s.True(s.m.IsEmpty())
	s.Equal(0, s.m.Rows())
	s.Equal(0, s.m.Cols())

	// Unfixed again: a row of any length is accepted.
	s.Require().NoError(s.m.AddRow([]float64{1, 2, 3, 4}))
	s.Equal(4, s.m.Cols())
}

func (s *RegularSuite) TestRemoveOnlyRowEmpties() {
	s.fill([]float64{1, 2})
	_, err := s.m.RemoveRow(0)
	s.Require().NoError(err)
	s.True(s.m.IsEmpty())
	s.Require().NoError(s.m.AddRow([]float64{1}))
	s.Equal(1, s.m.Cols())
}

func (s *RegularSuite) TestRemoveBounds() {
	_, err := s.m.RemoveRow(0)
	s.Require().ErrorIs(err, matrix.ErrOutOfRange)
	_, err = s.m.RemoveColumn(0)
	s.Require().ErrorIs(err, matrix.ErrOutOfRange)
}

func (s *RegularSuite) TestSnapshotsDoNotAlias() {
	src := []float64{1, 2}
	s.fill(src)
	src[0] = 100
	row, err := s.m.Row(0)
	s.Require().NoError(err)
	s.Equal([]float64{1, 2}, row)

	row[1] = 100
	col, err := s.m.Column(1)
	s.Require().NoError(err)
	s.Equal([]float64{2}, col)
	col[0] = -5
	s.Equal(2.0, MustAt(s.T(), s.m, 0, 1))
}

func (s *RegularSuite) TestSwapRowsMovesHeadersOnly() {
	s.fill([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	before := matrix.LayoutOf_TestOnly(s.m)
	s.Require().NoError(s.m.SwapRows(0, 2))
	after := matrix.LayoutOf_TestOnly(s.m)

	s.Same(before.Windows[0], after.Windows[2])
	s.Same(before.Windows[2], after.Windows[0])
	s.Equal(before.BufLen, after.BufLen)
	CompareExact(s.T(), [][]float64{{5, 6}, {3, 4}, {1, 2}}, s.m)

	s.Require().ErrorIs(s.m.SwapRows(0, 3), matrix.ErrOutOfRange)
	s.Require().ErrorIs(s.m.SwapRows(-1, 0), matrix.ErrOutOfRange)
}

func (s *RegularSuite) TestRowsLiveInOneBuffer() {
	s.fill([]float64{1, 2}, []float64{3, 4}, []float64{5, 6}, []float64{7, 8})
	l := matrix.LayoutOf_TestOnly(s.m)
	s.Equal(l.RowCap*l.ColCap, l.BufLen)
	for _, w := range l.Windows {
		s.True(matrix.InBuffer_TestOnly(s.m, w))
	}
}

func (s *RegularSuite) TestSubMatrix() {
	s.fill([]float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9})
	sub, err := s.m.SubMatrix(1, 1)
	s.Require().NoError(err)
	CompareExact(s.T(), [][]float64{{1, 3}, {7, 9}}, sub)
	CompareExact(s.T(), [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, s.m)

	sub, err = s.m.SubMatrix(0, 2)
	s.Require().NoError(err)
	CompareExact(s.T(), [][]float64{{4, 5}, {7, 8}}, sub)

	_, err = s.m.SubMatrix(3, 0)
	s.Require().ErrorIs(err, matrix.ErrOutOfRange)
}

func (s *RegularSuite) TestSubMatrixOfSingleRowIsEmpty() {
	s.fill([]float64{1, 2, 3})
	sub, err := s.m.SubMatrix(0, 1)
	s.Require().NoError(err)
	s.True(sub.IsEmpty())
}

func (s *RegularSuite) TestTransposeInvolution() {
	s.fill([]float64{1, 2, 3}, []float64{4, 5, 6})
	tr := s.m.Transpose()
	s.Equal(3, tr.Rows())
	s.Equal(2, tr.Cols())
	CompareExact(s.T(), [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)
	s.True(tr.Transpose().Equal(s.m))
	s.True(matrix.NewDefaultRegular[float64]().Transpose().IsEmpty())
}

func (s *RegularSuite) TestClearKeepsCapacity() {
	s.fill([]float64{1, 2, 3, 4}, []float64{5, 6, 7, 8})
	rc, cc := s.m.RowCapacity(), s.m.ColumnCapacity()
	s.m.Clear()
	s.True(s.m.IsEmpty())
	s.Equal(rc, s.m.RowCapacity())
	s.Equal(cc, s.m.ColumnCapacity())
	s.Require().NoError(s.m.AddRow([]float64{9}))
	s.Equal(1, s.m.Cols())
}

func (s *RegularSuite) TestTrimToSize() {
	s.fill([]float64{1, 2})
	s.m.TrimToSize()
	s.Equal(1, s.m.RowCapacity())
	s.Equal(2, s.m.ColumnCapacity())
	CompareExact(s.T(), [][]float64{{1, 2}}, s.m)

	s.m.Clear()
	s.m.TrimToSize()
	s.Equal(0, s.m.RowCapacity())
	s.Equal(0, s.m.ColumnCapacity())

	// Growing from the zero-size sentinel uses the default floor.
	s.fill([]float64{1})
	s.Equal(matrix.DefaultRowCapacity, s.m.RowCapacity())
	s.Equal(matrix.DefaultColCapacity, s.m.ColumnCapacity())
}

func (s *RegularSuite) TestLinearGrowth() {
	for i := 0; i < 5; i++ {
		s.fill([]float64{float64(i)})
	}
	s.Equal(5, s.m.RowCapacity())
}

func (s *RegularSuite) TestDoublingGrowth() {
	m := matrix.NewDefaultRegular[float64](matrix.WithGrowth(matrix.GrowDoubling))
	for i := 0; i < 7; i++ {
		s.Require().NoError(m.AddRow([]float64{float64(i), 0}))
	}
	s.Equal(12, m.RowCapacity())
	s.Equal(7, m.Rows())
	first, err := m.Row(0)
	s.Require().NoError(err)
	s.Equal([]float64{0, 0}, first)
	last, err := m.Row(6)
	s.Require().NoError(err)
	s.Equal([]float64{6, 0}, last)
}

func (s *RegularSuite) TestEnsureCapacity() {
	s.Require().NoError(s.m.EnsureRowCapacity(10))
	s.Require().NoError(s.m.EnsureColumnCapacity(7))
	s.Equal(10, s.m.RowCapacity())
	s.Equal(7, s.m.ColumnCapacity())
	s.Require().NoError(s.m.EnsureRowCapacity(2))
	s.Equal(10, s.m.RowCapacity())
	s.Require().ErrorIs(s.m.EnsureRowCapacity(-1), matrix.ErrInvalidArgument)
}

func (s *RegularSuite) TestSearch() {
	s.fill([]float64{1, 2, 1}, []float64{3, 1, 4})
	i, j, ok := s.m.IndexOf(1)
	s.True(ok)
	s.Equal([2]int{0, 0}, [2]int{i, j})
	i, j, ok = s.m.LastIndexOf(1)
	s.True(ok)
	s.Equal([2]int{1, 1}, [2]int{i, j})
	s.True(s.m.Contains(4))
	s.False(s.m.Contains(9))
	_, _, ok = s.m.IndexOf(9)
	s.False(ok)
}

func (s *RegularSuite) TestDoStopsEarly() {
	s.fill([]float64{1, 2}, []float64{3, 4})
	var seen []float64
	s.m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)

		return v < 3
	})
	s.Equal([]float64{1, 2, 3}, seen)
}

func (s *RegularSuite) TestEqualHandlesNil() {
	var a, b *matrix.Regular[float64]
	s.True(a.Equal(b))
	s.False(s.m.Equal(nil))
	s.True(s.m.Equal(matrix.NewDefaultRegular[float64]()))
}

func TestRegularSuite(t *testing.T) {
	suite.Run(t, new(RegularSuite))
}

// Regular is generic; pointer elements allow nil entries and compare by identity.
func TestRegularPointerElements(t *testing.T) {
	m := matrix.NewDefaultRegular[*string]()
	x := "x"
	require.NoError(t, m.AddRow([]*string{nil, &x}))
	i, j, ok := m.IndexOf(nil)
	require.True(t, ok)
	require.Equal(t, 0, i)
	require.Equal(t, 0, j)
	require.True(t, m.Contains(&x))

	other := matrix.NewDefaultRegular[*string]()
	require.NoError(t, other.AddRow([]*string{nil, &x}))
	require.True(t, m.Equal(other))
}

func TestRegularString(t *testing.T) {
	m := matrix.NewDefaultRegular[string]()
	require.Equal(t, "[]", m.String())
	require.NoError(t, m.AddRow([]string{"a", "b"}))
	require.NoError(t, m.AddRow([]string{"c", "d"}))
	require.Equal(t, "[a, b]\n[c, d]\n", m.String())
}
