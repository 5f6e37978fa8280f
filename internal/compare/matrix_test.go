package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stage-shift/internal/model"
)

func TestProjectMatrixZeroFill(t *testing.T) {
	order := model.CanonicalStages()

	m := ProjectMatrix(nil, order)
	require.Len(t, m.Stages, 5)
	require.Len(t, m.Cells, 5)
	for _, row := range m.Cells {
		require.Len(t, row, 5)
		for _, c := range row {
			assert.Zero(t, c)
		}
	}
	assert.Equal(t, order, m.Stages)
}

func TestProjectMatrixConservation(t *testing.T) {
	order := model.CanonicalStages()
	counts := map[StagePair]int{
		{model.StageRegistered, model.StagePersonal}: 3,
		{model.StagePersonal, model.StagePersonal}:   2,
		{model.StagePayment, model.StageRegistered}:  1,
		{model.StageUpload, model.StagePayment}:      4,
	}

	m := ProjectMatrix(counts, order)
	assert.Equal(t, 10, m.Total())
	assert.Equal(t, 3, m.Cell(model.StageRegistered, model.StagePersonal))
	assert.Equal(t, 2, m.Cell(model.StagePersonal, model.StagePersonal))
	assert.Equal(t, 1, m.Cell(model.StagePayment, model.StageRegistered))
	assert.Equal(t, 4, m.Cell(model.StageUpload, model.StagePayment))
}

func TestPairListAgreesWithMatrix(t *testing.T) {
	order := model.CanonicalStages()
	counts := map[StagePair]int{
		{model.StagePayment, model.StagePayment}:   1,
		{model.StageAcademic, model.StageUpload}:   5,
		{model.StageUpload, model.StageRegistered}: 2,
	}

	m := ProjectMatrix(counts, order)
	list := PairList(counts, order)

	require.Len(t, list, 25)

	// canonical row-major order
	assert.Equal(t, model.StageRegistered, list[0].Previous)
	assert.Equal(t, model.StageRegistered, list[0].Current)
	assert.Equal(t, model.StagePayment, list[24].Previous)
	assert.Equal(t, model.StagePayment, list[24].Current)

	listTotal := 0
	for _, tr := range list {
		assert.Equal(t, m.Cell(tr.Previous, tr.Current), tr.Count)
		listTotal += tr.Count
	}
	assert.Equal(t, m.Total(), listTotal)
}

func TestProjectMatrixCustomOrder(t *testing.T) {
	order := []model.Stage{"Ordered", "Packed", "Shipped"}
	counts := map[StagePair]int{
		{"Ordered", "Shipped"}: 7,
	}

	m := ProjectMatrix(counts, order)
	require.Len(t, m.Cells, 3)
	assert.Equal(t, 7, m.Cell("Ordered", "Shipped"))
	assert.Equal(t, 7, m.Total())
	assert.Len(t, PairList(counts, order), 9)
}
