package database

import (
	"gorm.io/gorm"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/models"
)

// migratedModels is every table this service owns, dependency order.
func migratedModels() []interface{} {
	return []interface{}{
		&models.Officer{},
		&models.Location{},
		&models.Crime{},
		&models.Criminal{},
		&models.Case{},
		&models.CriminalCase{},
		&models.CaseCrime{},
	}
}

// AutoMigrate creates missing tables and columns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(migratedModels()...)
}

// DropAndRecreate drops every owned table and rebuilds the schema. Only for
// the "drop" migration mode.
func DropAndRecreate(db *gorm.DB) error {
	tables := migratedModels()
	// reverse order so association tables go first
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return err
		}
	}
	return AutoMigrate(db)
}

// spAddCriminalWithCase is the combined criminal+case creation procedure.
// It mirrors the transactional fallback in the criminal service
// statement-for-statement; the database's transaction guarantees make the
// pair atomic.
const spAddCriminalWithCase = `
CREATE OR REPLACE FUNCTION sp_add_criminal_with_case(
	p_first_name varchar,
	p_last_name varchar,
	p_date_of_birth timestamptz,
	p_gender varchar,
	p_national_id varchar,
	p_address varchar,
	p_status varchar,
	p_danger_level varchar,
	p_case_title varchar DEFAULT NULL,
	p_case_description text DEFAULT NULL
) RETURNS bigint AS $$
DECLARE
	v_criminal_id bigint;
	v_case_id bigint;
BEGIN
	INSERT INTO criminals
		(first_name, last_name, date_of_birth, gender, national_id, address, status, danger_level, created_at, updated_at)
	VALUES
		(p_first_name, p_last_name, p_date_of_birth, p_gender, p_national_id, p_address, p_status, p_danger_level, NOW(), NOW())
	RETURNING id INTO v_criminal_id;

	IF p_case_title IS NOT NULL AND p_case_title <> '' THEN
		INSERT INTO cases
			(case_number, case_title, description, date_reported, status, created_at, updated_at)
		VALUES
			('CASE-' || to_char(NOW(), 'YYYYMMDDHH24MISS'), p_case_title, COALESCE(p_case_description, ''), NOW(), 'Open', NOW(), NOW())
		RETURNING id INTO v_case_id;

		INSERT INTO criminal_cases (criminal_id, case_id, role, date_associated)
		VALUES (v_criminal_id, v_case_id, 'Primary Suspect', NOW());
	END IF;

	RETURN v_criminal_id;
END;
$$ LANGUAGE plpgsql;
`

// InstallProcedures installs the stored procedures the services call.
// PostgreSQL only; the services carry a transactional equivalent for other
// dialects.
func InstallProcedures(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return db.Exec(spAddCriminalWithCase).Error
}
