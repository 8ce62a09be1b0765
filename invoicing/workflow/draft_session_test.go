package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	draftmock "encore.app/invoicing/mocks/business/draft_business"
)

func newSessionEnv(t *testing.T) (*draftmock.MockBusiness, *testsuite.TestWorkflowEnvironment) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockBiz := draftmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)
	t.Cleanup(func() { SetActivityDependencies(nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(RecomputeDraftTotalActivity)
	env.RegisterActivity(DiscardDraftActivity)
	return mockBiz, env
}

func TestDraftSession_IdleTimeoutDiscardsDraft(t *testing.T) {
	mockBiz, env := newSessionEnv(t)

	draftID := "draft-idle"
	mockBiz.EXPECT().Discard(gomock.Any(), draftID, "session_expired").Return(nil).Times(1)

	params := DraftSessionWorkflowParams{DraftID: draftID, OpenedAt: time.Now(), IdleTimeout: time.Hour}
	env.ExecuteWorkflow(DraftSession, params)

	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestDraftSession_ChangeSignalsRecomputeAndResetIdleTimer(t *testing.T) {
	mockBiz, env := newSessionEnv(t)

	draftID := "draft-active"
	mockBiz.EXPECT().RecomputeTotal(gomock.Any(), draftID).Return(nil).Times(2)

	// Two edits past the original idle window prove the timer resets, then
	// submission ends the session without a discard.
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(DraftChangedSignalName, DraftChangedSignal{Field: "electricity_new_index"})
	}, 40*time.Minute)
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(DraftChangedSignalName, DraftChangedSignal{Field: "water_new_index"})
	}, 75*time.Minute)
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(SubmitCompletedSignalName, SubmitCompletedSignal{InvoiceID: "inv-1"})
	}, 100*time.Minute)

	params := DraftSessionWorkflowParams{DraftID: draftID, OpenedAt: time.Now(), IdleTimeout: time.Hour}
	env.ExecuteWorkflow(DraftSession, params)

	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestDraftSession_ManualDiscard(t *testing.T) {
	mockBiz, env := newSessionEnv(t)

	draftID := "draft-cancelled"
	mockBiz.EXPECT().Discard(gomock.Any(), draftID, "operator_cancelled").Return(nil).Times(1)

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(DiscardDraftSignalName, DiscardDraftSignal{Reason: "operator_cancelled", DiscardedBy: "operator"})
	}, 5*time.Minute)

	params := DraftSessionWorkflowParams{DraftID: draftID, OpenedAt: time.Now(), IdleTimeout: time.Hour}
	env.ExecuteWorkflow(DraftSession, params)

	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestDraftSession_ZeroIdleTimeoutUsesDefault(t *testing.T) {
	mockBiz, env := newSessionEnv(t)

	draftID := "draft-default-ttl"
	mockBiz.EXPECT().Discard(gomock.Any(), draftID, "session_expired").Return(nil).Times(1)

	params := DraftSessionWorkflowParams{DraftID: draftID, OpenedAt: time.Now()}
	env.ExecuteWorkflow(DraftSession, params)

	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestActivities_FailurePaths(t *testing.T) {
	testErr := errors.New("boom")

	run := func(name string, expect func(m *draftmock.MockBusiness), invoke func(env *testsuite.TestActivityEnvironment) error) {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockBiz := draftmock.NewMockBusiness(ctrl)
			SetActivityDependencies(mockBiz)
			t.Cleanup(func() { SetActivityDependencies(nil) })

			var ts testsuite.WorkflowTestSuite
			env := ts.NewTestActivityEnvironment()
			env.RegisterActivity(RecomputeDraftTotalActivity)
			env.RegisterActivity(DiscardDraftActivity)

			expect(mockBiz)
			err := invoke(env)
			if err == nil {
				t.Fatalf("expected error from activity but got nil")
			}
			assert.Contains(t, err.Error(), testErr.Error())
		})
	}

	run("RecomputeDraftTotalActivity failure", func(m *draftmock.MockBusiness) {
		m.EXPECT().RecomputeTotal(gomock.Any(), "draft-1").Return(testErr).Times(1)
	}, func(env *testsuite.TestActivityEnvironment) error {
		fut, err := env.ExecuteActivity(RecomputeDraftTotalActivity, "draft-1")
		if err != nil {
			return err
		}
		var out interface{}
		return fut.Get(&out)
	})

	run("DiscardDraftActivity failure", func(m *draftmock.MockBusiness) {
		m.EXPECT().Discard(gomock.Any(), "draft-1", "reason").Return(testErr).Times(1)
	}, func(env *testsuite.TestActivityEnvironment) error {
		fut, err := env.ExecuteActivity(DiscardDraftActivity, "draft-1", "reason")
		if err != nil {
			return err
		}
		var out interface{}
		return fut.Get(&out)
	})
}
