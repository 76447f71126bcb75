package parser

import (
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type recordedStage struct {
	stage   int
	matched bool
}

type recordingObserver struct {
	stages []recordedStage
}

func (o *recordingObserver) ObserveStage(stage int, matched bool) {
	o.stages = append(o.stages, recordedStage{stage: stage, matched: matched})
}

type PipelineTestSuite struct {
	suite.Suite
	taxonomy *Taxonomy
	pipeline *Pipeline
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) SetupTest() {
	s.taxonomy = DefaultTaxonomy()
	s.pipeline = NewPipeline(s.taxonomy)
}

func (s *PipelineTestSuite) assertAmount(expected string, actual decimal.Decimal) {
	s.True(decimal.RequireFromString(expected).Equal(actual), "expected amount %s, got %s", expected, actual)
}

func (s *PipelineTestSuite) TestProcess_BareAmount() {
	result := s.pipeline.Process("500")

	s.Require().NotNil(result)
	s.assertAmount("500", result.Amount)
	s.Empty(result.Description)
	s.Nil(result.Category)
	s.Equal(StageNumeric, result.StageReached)
	s.Equal(1.0, result.Confidence)
	s.True(result.NeedsCategory())
}

func (s *PipelineTestSuite) TestProcess_AmountThenDescription() {
	result := s.pipeline.Process("500 кофе")

	s.Require().NotNil(result)
	s.assertAmount("500", result.Amount)
	s.Equal("кофе", result.Description)
	s.Require().NotNil(result.Category)
	s.Equal("coffee", result.Category.ID)
	s.Equal("☕ Кофе", result.Category.Name)
	s.Equal(StageExtension, result.StageReached)
	s.InDelta(0.95, result.Confidence, 1e-9)
}

func (s *PipelineTestSuite) TestProcess_DescriptionThenAmount() {
	result := s.pipeline.Process("такси 300")

	s.Require().NotNil(result)
	s.assertAmount("300", result.Amount)
	s.Equal("такси", result.Description)
	s.Require().NotNil(result.Category)
	s.Equal("🚕 Транспорт", result.Category.Name)
	s.Equal(StageExtension, result.StageReached)
}

func (s *PipelineTestSuite) TestProcess_NoAmount() {
	s.Nil(s.pipeline.Process("абракадабра"))
}

func (s *PipelineTestSuite) TestProcess_UnknownWordFallsBackToCatchAll() {
	result := s.pipeline.Process("500 непонятное_слово")

	s.Require().NotNil(result)
	s.Require().NotNil(result.Category)
	s.Equal(s.taxonomy.CatchAll().ID, result.Category.ID)
	s.Equal(0.5, result.Confidence)
	s.Equal(StageExtension, result.StageReached)
}

func (s *PipelineTestSuite) TestProcess_SlangAmount() {
	result := s.pipeline.Process("пятихатка кофе")

	s.Require().NotNil(result)
	s.assertAmount("500", result.Amount)
	s.Equal("coffee", result.CategoryID())
}

func (s *PipelineTestSuite) TestProcess_SlangOnly() {
	result := s.pipeline.Process("Косарь")

	s.Require().NotNil(result)
	s.assertAmount("1000", result.Amount)
	s.Equal(StageNumeric, result.StageReached)
}

func (s *PipelineTestSuite) TestProcess_PureDigitStrings() {
	inputs := []string{"0", "7", "42", "1500", "99.5", "99,90", "  250  "}

	for _, input := range inputs {
		s.Run(input, func() {
			result := s.pipeline.Process(input)
			s.Require().NotNil(result)

			expected, err := decimal.NewFromString(strings.ReplaceAll(s.pipeline.Normalize(strings.TrimSpace(input)), ",", "."))
			s.Require().NoError(err)
			s.True(expected.Equal(result.Amount))
			s.Equal(1.0, result.Confidence)
			s.Equal(StageNumeric, result.StageReached)
		})
	}
}

func (s *PipelineTestSuite) TestProcess_KeywordCategories() {
	testCases := []struct {
		input            string
		expectedCategory string
	}{
		{"300 такси до дома", "transport"},
		{"1200 обед", "food"},
		{"450 аптека", "health"},
		{"продукты 2300", "groceries"},
		{"800 кино", "entertainment"},
		{"5000 квартплата", "utilities"},
		{"3500 обувь", "shopping"},
		{"250 латте", "coffee"},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			result := s.pipeline.Process(tc.input)
			s.Require().NotNil(result)
			s.Equal(tc.expectedCategory, result.CategoryID())
			s.GreaterOrEqual(result.Confidence, 0.7)
			s.LessOrEqual(result.Confidence, 0.95)
		})
	}
}

func (s *PipelineTestSuite) TestProcess_DecimalCommaInMixedText() {
	result := s.pipeline.Process("1500,50 обед")

	s.Require().NotNil(result)
	s.assertAmount("1500.5", result.Amount)
	s.Equal("обед", result.Description)
}

func (s *PipelineTestSuite) TestProcess_DescriptionIsLowerCased() {
	result := s.pipeline.Process("300 ТАКСИ")

	s.Require().NotNil(result)
	s.Equal("такси", result.Description)
	s.Equal("transport", result.CategoryID())
}

func (s *PipelineTestSuite) TestProcess_MalformedNumbers() {
	for _, input := range []string{"1,000.5", "1.2.3", "", "   ", "-"} {
		s.Run(input, func() {
			s.Nil(s.pipeline.Process(input))
		})
	}
}

func (s *PipelineTestSuite) TestProcess_ObserverSeesStages() {
	observer := &recordingObserver{}
	pipeline := NewPipeline(s.taxonomy, WithObserver(observer))

	pipeline.Process("такси 300")

	s.Equal([]recordedStage{
		{stage: StageNumeric, matched: false},
		{stage: StageExtractor, matched: true},
		{stage: StageClassifier, matched: true},
		{stage: StageExtension, matched: true},
	}, observer.stages)
}

func (s *PipelineTestSuite) TestProcess_ObserverStopsOnNoMatch() {
	observer := &recordingObserver{}
	pipeline := NewPipeline(s.taxonomy, WithObserver(observer))

	s.Nil(pipeline.Process("абракадабра"))
	s.Equal([]recordedStage{
		{stage: StageNumeric, matched: false},
		{stage: StageExtractor, matched: false},
	}, observer.stages)
}

type tagStage struct{}

func (tagStage) Enrich(tx ParsedTransaction) ParsedTransaction {
	tx.StageReached = StageExtension
	tx.Description = tx.Description + " (проверено)"
	return tx
}

func (s *PipelineTestSuite) TestProcess_CustomExtensionStage() {
	pipeline := NewPipeline(s.taxonomy, WithExtension(tagStage{}))

	result := pipeline.Process("500 кофе")

	s.Require().NotNil(result)
	s.Equal("кофе (проверено)", result.Description)
	s.Equal("coffee", result.CategoryID())
}

func (s *PipelineTestSuite) TestProcess_CustomPatternTable() {
	pipeline := NewPipeline(s.taxonomy, WithAmountPatterns(DefaultAmountPatterns()[3:]))

	result := pipeline.Process("кофе за 150")
	s.Require().NotNil(result)
	s.Equal("кофе", result.Description)

	s.Nil(pipeline.Process("150 кофе"))
}

func (s *PipelineTestSuite) TestProcess_ConcurrentCalls() {
	inputs := []string{"500 кофе", "такси 300", "500", "абракадабра", "1200 обед"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			first := s.pipeline.Process(input)
			second := s.pipeline.Process(input)
			if first == nil {
				s.Nil(second)
				return
			}
			s.Equal(*first, *second)
		}(inputs[i%len(inputs)])
	}
	wg.Wait()
}

func (s *PipelineTestSuite) TestApplyEnricher_Nil() {
	s.Nil(ApplyEnricher(PassThroughStage{}, nil))
}
