package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stayhaven/internal/models"
)

type AgentRepositoryImpl struct {
	db *sqlx.DB
}

func NewAgentRepository(db *sqlx.DB) *AgentRepositoryImpl {
	return &AgentRepositoryImpl{db: db}
}

func (r *AgentRepositoryImpl) Create(ctx context.Context, agent *models.Agent) error {
	query := `
        INSERT INTO agents
        (agent_id, name, role, email, bio, experience, portfolio, specialties, image_url,
         rating, status, created_at, updated_at)
        VALUES
        (:agent_id, :name, :role, :email, :bio, :experience, :portfolio, :specialties, :image_url,
         :rating, :status, :created_at, :updated_at)
    `

	if agent.AgentID == "" {
		agent.AgentID = uuid.New().String()
	}
	if agent.Status == "" {
		agent.Status = models.AgentActive
	}

	now := time.Now()
	agent.CreatedAt = now
	agent.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, agent)
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}

	return nil
}

func (r *AgentRepositoryImpl) GetByID(ctx context.Context, agentID string) (*models.Agent, error) {
	query := `SELECT * FROM agents WHERE agent_id = $1`

	var agent models.Agent
	err := r.db.GetContext(ctx, &agent, query, agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return &agent, nil
}

func (r *AgentRepositoryImpl) GetAll(ctx context.Context, filter AgentFilter) ([]models.Agent, error) {
	query := `SELECT * FROM agents`
	var args []interface{}

	if filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, filter.Status)
	}

	query += ` ORDER BY created_at DESC`

	agents := []models.Agent{}
	err := r.db.SelectContext(ctx, &agents, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return agents, nil
}

func (r *AgentRepositoryImpl) Update(ctx context.Context, agent *models.Agent) error {
	query := `
		UPDATE agents SET
			name = :name,
			role = :role,
			email = :email,
			bio = :bio,
			experience = :experience,
			portfolio = :portfolio,
			specialties = :specialties,
			image_url = :image_url,
			rating = :rating,
			status = :status,
			updated_at = :updated_at
		WHERE agent_id = :agent_id
	`

	agent.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, agent)
	if err != nil {
		return fmt.Errorf("failed to update agent: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("agent %s: %w", agent.AgentID, ErrNotFound)
	}

	return nil
}

func (r *AgentRepositoryImpl) Delete(ctx context.Context, agentID string) error {
	query := `DELETE FROM agents WHERE agent_id = $1`

	result, err := r.db.ExecContext(ctx, query, agentID)
	if err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
	}

	return nil
}
