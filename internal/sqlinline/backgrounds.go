package sqlinline

const QListBackgrounds = `--sql 4e12d927-7146-41bb-93f4-d94307ddcea0
select id, image, title, sort_order, active, created_at
from background_images
where ($1::boolean = false or active = true)
order by sort_order asc;
`

const QSelectBackgroundByID = `--sql 3ffb164e-b0ca-4994-a3a0-d895567e6058
select id, image, title, sort_order, active, created_at
from background_images
where id = $1::bigint;
`

const QInsertBackground = `--sql 237a75c9-6192-4b1d-b0bf-5f1277aefddd
insert into background_images(image, title, sort_order, active, created_at)
values ($1::text, $2::text, $3::int, $4::boolean, now())
returning id, created_at;
`

const QUpdateBackground = `--sql 23e20513-b581-4422-bd27-8334ed968cc4
update background_images
set image = $2::text, title = $3::text, sort_order = $4::int, active = $5::boolean
where id = $1::bigint;
`

const QDeleteBackground = `--sql 6e5dbc66-af65-4073-93da-3523aa776a13
delete from background_images where id = $1::bigint;
`
