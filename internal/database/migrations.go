package database

// migrationsSQL contains all database migrations, applied in order by
// version number. Each migration must be idempotent.
var migrationsSQL = map[int]string{
	1: migrationV1Celebrations,
	2: migrationV2SeedGeneralCalendar,
	3: migrationV3SeedNationalPropers,
}

// migrationV1Celebrations creates the celebrations table.
//
// One row per fixed-date celebration per calendar. The temporal cycle
// (seasons, Sundays, Easter-anchored days) is computed at runtime by
// the engine and is deliberately not stored here; only the sanctoral
// cycle lives in the database.
const migrationV1Celebrations = `
-- Migration 001: celebrations table

CREATE TABLE IF NOT EXISTS celebrations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- "general" or an engine country identifier (unitedStates, england, ...)
    calendar TEXT NOT NULL,

    -- Recurring calendar date
    month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
    day INTEGER NOT NULL CHECK (day BETWEEN 1 AND 31),

    -- Stable slug used as the public id of the day
    key TEXT NOT NULL,
    name TEXT NOT NULL,

    rank TEXT NOT NULL CHECK (rank IN (
        'SOLEMNITY',
        'FEAST',
        'MEMORIAL',
        'OPT_MEMORIAL'
    )),

    -- Engine color identifier (WHITE, RED, ...); empty means "use the
    -- season default"
    color TEXT NOT NULL DEFAULT '',

    created_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (calendar, month, day, key)
);

CREATE INDEX IF NOT EXISTS idx_celebrations_calendar
    ON celebrations(calendar);

CREATE INDEX IF NOT EXISTS idx_celebrations_date
    ON celebrations(calendar, month, day);
`

// migrationV2SeedGeneralCalendar seeds the General Roman Calendar's
// fixed-date celebrations. Movable days (Easter cycle, Christ the King,
// Holy Family, the Nativity itself) are computed by the engine and are
// not listed here.
const migrationV2SeedGeneralCalendar = `
-- Migration 002: General Roman Calendar seed

INSERT OR IGNORE INTO celebrations (calendar, month, day, key, name, rank, color) VALUES
    ('general',  1,  1, 'mary_mother_of_god',                  'Mary, the Holy Mother of God',                              'SOLEMNITY',    'WHITE'),
    ('general',  1, 25, 'conversion_of_saint_paul',            'The Conversion of Saint Paul the Apostle',                  'FEAST',        'WHITE'),
    ('general',  2,  2, 'presentation_of_the_lord',            'The Presentation of the Lord',                              'FEAST',        'WHITE'),
    ('general',  2, 11, 'our_lady_of_lourdes',                 'Our Lady of Lourdes',                                       'OPT_MEMORIAL', 'WHITE'),
    ('general',  2, 14, 'saints_cyril_and_methodius',          'Saints Cyril, Monk, and Methodius, Bishop',                 'MEMORIAL',     'WHITE'),
    ('general',  3, 19, 'saint_joseph_spouse_of_mary',         'Saint Joseph, Spouse of the Blessed Virgin Mary',           'SOLEMNITY',    'WHITE'),
    ('general',  3, 25, 'annunciation_of_the_lord',            'The Annunciation of the Lord',                              'SOLEMNITY',    'WHITE'),
    ('general',  4, 25, 'saint_mark_evangelist',               'Saint Mark, Evangelist',                                    'FEAST',        'RED'),
    ('general',  4, 29, 'saint_catherine_of_siena',            'Saint Catherine of Siena, Virgin and Doctor of the Church', 'MEMORIAL',     'WHITE'),
    ('general',  5,  3, 'saints_philip_and_james',             'Saints Philip and James, Apostles',                         'FEAST',        'RED'),
    ('general',  5, 31, 'visitation_of_the_virgin_mary',       'The Visitation of the Blessed Virgin Mary',                 'FEAST',        'WHITE'),
    ('general',  6,  5, 'saint_boniface',                      'Saint Boniface, Bishop and Martyr',                         'MEMORIAL',     'RED'),
    ('general',  6, 24, 'nativity_of_saint_john_the_baptist',  'The Nativity of Saint John the Baptist',                    'SOLEMNITY',    'WHITE'),
    ('general',  6, 29, 'saints_peter_and_paul',               'Saints Peter and Paul, Apostles',                           'SOLEMNITY',    'RED'),
    ('general',  7,  3, 'saint_thomas_apostle',                'Saint Thomas, Apostle',                                     'FEAST',        'RED'),
    ('general',  7, 22, 'saint_mary_magdalene',                'Saint Mary Magdalene',                                      'FEAST',        'WHITE'),
    ('general',  7, 25, 'saint_james_apostle',                 'Saint James, Apostle',                                      'FEAST',        'RED'),
    ('general',  7, 26, 'saints_joachim_and_anne',             'Saints Joachim and Anne, Parents of the Blessed Virgin Mary', 'MEMORIAL',   'WHITE'),
    ('general',  8,  6, 'transfiguration_of_the_lord',         'The Transfiguration of the Lord',                           'FEAST',        'WHITE'),
    ('general',  8, 10, 'saint_lawrence',                      'Saint Lawrence, Deacon and Martyr',                         'FEAST',        'RED'),
    ('general',  8, 15, 'assumption_of_the_virgin_mary',       'The Assumption of the Blessed Virgin Mary',                 'SOLEMNITY',    'WHITE'),
    ('general',  8, 28, 'saint_augustine',                     'Saint Augustine, Bishop and Doctor of the Church',          'MEMORIAL',     'WHITE'),
    ('general',  9, 14, 'exaltation_of_the_holy_cross',        'The Exaltation of the Holy Cross',                          'FEAST',        'RED'),
    ('general',  9, 21, 'saint_matthew',                       'Saint Matthew, Apostle and Evangelist',                     'FEAST',        'RED'),
    ('general',  9, 29, 'archangels',                          'Saints Michael, Gabriel and Raphael, Archangels',           'FEAST',        'WHITE'),
    ('general', 10,  1, 'saint_therese_of_the_child_jesus',    'Saint Thérèse of the Child Jesus, Virgin and Doctor',       'MEMORIAL',     'WHITE'),
    ('general', 10,  4, 'saint_francis_of_assisi',             'Saint Francis of Assisi',                                   'MEMORIAL',     'WHITE'),
    ('general', 10, 18, 'saint_luke_evangelist',               'Saint Luke, Evangelist',                                    'FEAST',        'RED'),
    ('general', 11,  1, 'all_saints',                          'All Saints',                                                'SOLEMNITY',    'WHITE'),
    ('general', 11,  2, 'all_souls',                           'The Commemoration of All the Faithful Departed (All Souls)', 'MEMORIAL',    'PURPLE'),
    ('general', 11,  9, 'dedication_of_the_lateran_basilica',  'The Dedication of the Lateran Basilica',                    'FEAST',        'WHITE'),
    ('general', 11, 30, 'saint_andrew_apostle',                'Saint Andrew, Apostle',                                     'FEAST',        'RED'),
    ('general', 12,  3, 'saint_francis_xavier',                'Saint Francis Xavier, Priest',                              'MEMORIAL',     'WHITE'),
    ('general', 12,  8, 'immaculate_conception',               'The Immaculate Conception of the Blessed Virgin Mary',      'SOLEMNITY',    'WHITE'),
    ('general', 12, 13, 'saint_lucy',                          'Saint Lucy, Virgin and Martyr',                             'MEMORIAL',     'RED'),
    ('general', 12, 26, 'saint_stephen',                       'Saint Stephen, the First Martyr',                           'FEAST',        'RED'),
    ('general', 12, 27, 'saint_john_evangelist',               'Saint John, Apostle and Evangelist',                        'FEAST',        'WHITE'),
    ('general', 12, 28, 'holy_innocents',                      'The Holy Innocents, Martyrs',                               'FEAST',        'RED');
`

// migrationV3SeedNationalPropers seeds the propers of the six supported
// national calendars. Where a country elevates a general celebration
// (patron saints), the proper entry repeats the key with the higher
// rank and shadows the general row.
const migrationV3SeedNationalPropers = `
-- Migration 003: national propers

INSERT OR IGNORE INTO celebrations (calendar, month, day, key, name, rank, color) VALUES
    -- United States
    ('unitedStates',  1,  4, 'saint_elizabeth_ann_seton',      'Saint Elizabeth Ann Seton, Religious',                      'MEMORIAL',     'WHITE'),
    ('unitedStates',  7,  4, 'independence_day',               'Independence Day',                                          'OPT_MEMORIAL', 'WHITE'),
    ('unitedStates', 11, 13, 'saint_frances_xavier_cabrini',   'Saint Frances Xavier Cabrini, Virgin',                      'MEMORIAL',     'WHITE'),
    ('unitedStates', 12, 12, 'our_lady_of_guadalupe',          'Our Lady of Guadalupe',                                     'FEAST',        'WHITE'),

    -- England
    ('england',  4, 23, 'saint_george',                        'Saint George, Martyr, Patron of England',                   'SOLEMNITY',    'RED'),
    ('england',  5,  4, 'english_martyrs',                     'The English Martyrs',                                       'FEAST',        'RED'),
    ('england',  9, 24, 'our_lady_of_walsingham',              'Our Lady of Walsingham',                                    'MEMORIAL',     'WHITE'),
    ('england', 10, 13, 'saint_edward_the_confessor',          'Saint Edward the Confessor',                                'OPT_MEMORIAL', 'WHITE'),

    -- Italy
    ('italy',  4, 29, 'saint_catherine_of_siena',              'Saint Catherine of Siena, Virgin, Patron of Italy',         'FEAST',        'WHITE'),
    ('italy', 10,  4, 'saint_francis_of_assisi',               'Saint Francis of Assisi, Patron of Italy',                  'FEAST',        'WHITE'),

    -- France
    ('france',  1, 15, 'saint_remigius',                       'Saint Remigius, Bishop',                                    'OPT_MEMORIAL', 'WHITE'),
    ('france',  5, 30, 'saint_joan_of_arc',                    'Saint Joan of Arc, Virgin',                                 'MEMORIAL',     'WHITE'),
    ('france', 10,  1, 'saint_therese_of_the_child_jesus',     'Saint Thérèse of the Child Jesus, Patroness of France',     'FEAST',        'WHITE'),

    -- Spain
    ('spain',  5, 15, 'saint_isidore_the_farmer',              'Saint Isidore the Farmer',                                  'OPT_MEMORIAL', 'WHITE'),
    ('spain',  7, 25, 'saint_james_apostle',                   'Saint James, Apostle, Patron of Spain',                     'SOLEMNITY',    'RED'),
    ('spain', 10, 12, 'our_lady_of_the_pillar',                'Our Lady of the Pillar',                                    'FEAST',        'WHITE'),

    -- Germany
    ('germany',  6,  5, 'saint_boniface',                      'Saint Boniface, Bishop and Martyr, Patron of Germany',      'FEAST',        'RED'),
    ('germany',  9, 17, 'saint_hildegard_of_bingen',           'Saint Hildegard of Bingen, Virgin and Doctor',              'OPT_MEMORIAL', 'WHITE'),
    ('germany', 11, 19, 'saint_elizabeth_of_hungary',          'Saint Elizabeth of Hungary, Religious',                     'MEMORIAL',     'WHITE');
`
