package sqlinline

const QListPhotos = `--sql 7bbc6f31-95e6-4ba3-8ec9-bda3c86167fb
select id, gallery, image, title, sort_order, active, created_at
from album_photos
where ($1::boolean is null or active = $1::boolean)
order by gallery asc, sort_order asc;
`

const QListPhotosByGallery = `--sql 9d34b1c3-349c-42e5-aabf-c39a2c3f8588
select id, gallery, image, title, sort_order, active, created_at
from album_photos
where gallery = $1::text and ($2::boolean is null or active = $2::boolean)
order by sort_order asc;
`

const QSelectPhotoByID = `--sql 194f5250-6ca8-44f5-8ac8-bd1d6f42ca89
select id, gallery, image, title, sort_order, active, created_at
from album_photos
where id = $1::bigint;
`

const QMaxPhotoSortOrder = `--sql 64ab5a77-4e40-4825-b142-49a1a89f8ade
select coalesce(max(sort_order), -1) from album_photos where gallery = $1::text;
`

const QInsertPhoto = `--sql d03baab8-fbe2-4f16-bdbb-efea84be8bfc
insert into album_photos(gallery, image, title, sort_order, active, created_at)
values ($1::text, $2::text, $3::text, $4::int, $5::boolean, now())
returning id, created_at;
`

const QUpdatePhoto = `--sql 26f59022-6b8c-44ae-a89e-567597f63e25
update album_photos
set gallery = $2::text, image = $3::text, title = $4::text, sort_order = $5::int, active = $6::boolean
where id = $1::bigint;
`

const QSetPhotoActive = `--sql afdc8fb9-21e8-4d86-a109-ecb6d6481dd1
update album_photos set active = $2::boolean where id = $1::bigint;
`

const QSetPhotoSortOrder = `--sql 354f3710-47c5-4fde-be68-38b7d058ce13
update album_photos set sort_order = $2::int where id = $1::bigint;
`

const QDeletePhoto = `--sql 9c9bfb5e-8a70-47b1-b71a-c75ce71e113d
delete from album_photos where id = $1::bigint;
`
